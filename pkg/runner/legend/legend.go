package legend

import (
	"context"
	"fmt"

	"github.com/antoniocanovasleon/iberfoods/pkg/printers"
)

// Legend prints what every symbol on the calendar and board means.
type Legend struct{}

func (n *Legend) Do(_ context.Context) error {
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Legend()
	return nil
}
