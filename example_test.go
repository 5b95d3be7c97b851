package gqlid_test

import (
	"fmt"

	"github.com/mongoql/gqlid"
	"github.com/mongoql/gqlid/pkg/models"
)

func ExampleDecode() {
	for _, input := range []string{`{"$oid":"5eaefffa00c9fdf000c46fdc"}`, `"$oid:not_valid"`, `42`} {
		id, err := gqlid.Decode([]byte(input), gqlid.FormatJSON)
		if err != nil {
			panic(err)
		}
		fmt.Println(id.Kind(), id)
	}

	_, err := gqlid.Decode([]byte(`true`), gqlid.FormatJSON)
	fmt.Println(err != nil)

	// Output:
	// objectid $oid:5eaefffa00c9fdf000c46fdc
	// string $oid:not_valid
	// int64 42
	// true
}

func ExampleEncode() {
	id := models.FromString("$oid:5eaefffa00c9fdf000c46fdc")

	data, err := gqlid.Encode(id, gqlid.FormatJSON)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))

	// Output:
	// {"$oid":"5eaefffa00c9fdf000c46fdc"}
}
