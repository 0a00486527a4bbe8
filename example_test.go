package sure_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/sure"
	"github.com/viant/sure/policy"
)

func removeAll(items *[]string) *sure.Gate[int] {
	return sure.Defer(func() int {
		n := len(*items)
		*items = nil
		return n
	})
}

func ExampleDefer() {
	items := []string{"a", "b"}

	removeAll(&items).Decline()
	fmt.Println(len(items))

	removed := removeAll(&items).Confirm()
	fmt.Println(removed, len(items))
	// Output:
	// 2
	// 2 0
}

func ExampleResolve() {
	items := []string{"a", "b"}
	resolver := sure.New(sure.WithPolicy(&policy.Policy{BlockList: []string{"items.removeAll"}}))

	_, _, err := sure.Resolve(context.Background(), resolver, "items.removeAll", removeAll(&items))
	fmt.Println(errors.Is(err, sure.ErrDeclined), len(items))
	// Output: true 2
}
