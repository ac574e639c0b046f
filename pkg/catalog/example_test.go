package catalog_test

import (
	"fmt"
	"log"

	"github.com/agentstation/datakit/pkg/catalog"
	"github.com/agentstation/datakit/pkg/handles"
	"github.com/agentstation/datakit/pkg/logging"
)

func ExampleNew() {
	cat, err := catalog.New(
		catalog.WithHandle("weather", handles.NewMemoryFrom(21.0)),
		catalog.WithLogger(logging.NewNopLogger()),
	)
	if err != nil {
		log.Fatal(err)
	}

	value, err := cat.Load("weather")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(value)
	// Output: 21
}

// doubler multiplies integers on their way to and from the handle.
type doubler struct {
	catalog.Base
}

func (doubler) OnSave(_ string, next catalog.SaveFunc, data any) error {
	return next(data.(int) * 2)
}

func ExampleCatalog_AddInterceptor() {
	cat, err := catalog.New(
		catalog.WithHandle("count", handles.NewMemory()),
		catalog.WithLogger(logging.NewNopLogger()),
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := cat.AddInterceptor(doubler{}); err != nil {
		log.Fatal(err)
	}

	if err := cat.Save("count", 21); err != nil {
		log.Fatal(err)
	}
	value, err := cat.Load("count")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(value)
	// Output: 42
}

func ExampleCatalog_ShallowCopy() {
	original, err := catalog.New(
		catalog.WithHandle("shared", handles.NewMemoryFrom("data")),
		catalog.WithLogger(logging.NewNopLogger()),
	)
	if err != nil {
		log.Fatal(err)
	}

	derived := original.ShallowCopy()
	derived.Add("extra", handles.NewMemory())

	fmt.Println(original.Names())
	fmt.Println(derived.Names())
	// Output:
	// [shared]
	// [extra shared]
}
