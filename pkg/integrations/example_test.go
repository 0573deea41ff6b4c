package integrations_test

import (
	"fmt"

	"github.com/matzehuels/mvnsearch/pkg/integrations"
)

func Example_errors() {
	// Standard errors for registry operations
	fmt.Println("ErrNotFound:", integrations.ErrNotFound)
	fmt.Println("ErrNetwork:", integrations.ErrNetwork)
	// Output:
	// ErrNotFound: not found
	// ErrNetwork: network error
}
