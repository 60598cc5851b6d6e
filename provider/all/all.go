// Package all imports all client factory implementations.
package all

import (
	_ "github.com/catalogfs/cloudauth/provider/aws" // register aws factory
)
