// Command arbor runs the bundled sample specification. It shows every hook kind
// and doubles as a smoke test for the command line:
//
//	arbor --tags fast
//	arbor --format json --exclude slow
//	arbor graph --status
package main

import (
	"github.com/aretw0/arbor"
)

func main() {
	arbor.Main("arbor", bankSpec)
}
