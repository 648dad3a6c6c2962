package rgb_test

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/rgbconv/rgb"
)

func ExampleFromTuple() {
	c, err := rgb.FromTuple(183, 65, 14)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c, c.Hex())
	// Output: rgb(183, 65, 14) #b7410e
}

func ExampleFromSlice() {
	_, err := rgb.FromSlice([]int16{0, 0, 0, 0})
	fmt.Println(errors.Is(err, rgb.ErrBadLength))

	_, err = rgb.FromSlice([]int16{-1, 255, 255})
	kind, _ := rgb.KindOf(err)
	fmt.Println(kind)
	// Output:
	// true
	// out_of_range
}
