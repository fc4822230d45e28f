package pyson_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ardnew/pyson/pyson"
)

func ExampleDecode() {
	doc, err := pyson.Decode("name:str:Ember Lee\n" +
		"age:int:42\n" +
		"pi:float:3.14\n" +
		"fruits:list:apple(*)banana(*)cherry\n")
	if err != nil {
		fmt.Println(err)

		return
	}

	for key, value := range doc.All() {
		fmt.Printf("%s (%s) = %s\n", key, value.Type(), value)
	}

	// Output:
	// name (str) = Ember Lee
	// age (int) = 42
	// pi (float) = 3.14
	// fruits (list) = [apple, banana, cherry]
}

func ExampleDecodeLine() {
	rec, err := pyson.DecodeLine("fruits:list:apple(*)banana(*)cherry")
	if err != nil {
		fmt.Println(err)

		return
	}

	if list, ok := rec.Value.(pyson.List); ok {
		fmt.Println(rec.Key, len(list), list[1])
	}

	// Output:
	// fruits 3 banana
}

func ExampleDecode_error() {
	_, err := pyson.Decode("ok:int:1\nn:int:notanumber\n")

	var pe *pyson.ParseError
	if errors.As(err, &pe) {
		fmt.Println("line", pe.Line, errors.Is(err, pyson.ErrInvalidInteger))
	}

	// Output:
	// line 2 true
}

func ExampleRead() {
	src := strings.NewReader("count:int:3\ncount:int:4\n")

	doc, err := pyson.Read(context.Background(), src)
	if err != nil {
		fmt.Println(err)

		return
	}

	v, _ := doc.Get("count")
	fmt.Println(doc.Len(), v)

	// Output:
	// 1 4
}

func ExampleSplit() {
	fmt.Printf("%q\n", pyson.Split("a::b:", ":"))

	// Output:
	// ["a" "" "b" ""]
}
