/*
Package provider provides a means of allowing provider client factories to self-register
on load via an init() call to provider.Register("some name", factory).

In this way, a hosting engine can simply load the provider(s) it intends to use and begin
building clients:

	package main

	// import provider and each provider you intend to use
	import(
	    "github.com/catalogfs/cloudauth/provider"
	    "github.com/catalogfs/cloudauth/provider/aws"
	)

	func main() {
	    factory := provider.Factory(aws.Provider)
	    if err := factory.Initialize(properties); err != nil {
	        panic(err)
	    }

	    // Factory returns cloudauth.ClientFactory so it must be cast to the
	    // provider's factory type to build clients
	    storage, err := factory.(*aws.Factory).StorageClient(context.Background())
	    if err != nil {
	        panic(err)
	    }
	    ...
	}

To create your own provider, you must create a package that implements the
cloudauth.ClientFactory interface, then ensure it registers itself on load:

	package myexoticcloud

	import(
	    "github.com/catalogfs/cloudauth/provider"
	)

	const Provider = "myexoticcloud"

	func init() {
	    provider.Register(Provider, NewFactory())
	}

Then do similarly for any clients the provider is able to build.
*/
package provider
