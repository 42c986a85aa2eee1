package convert_test

import (
	"fmt"

	"github.com/mmuldo/labcodec/convert"
)

func ExamplePackedToHex() {
	fmt.Println(convert.PackedToHex(255, true))
	fmt.Println(convert.PackedToHex(0xC0FFEE, false))
	// Output:
	// #0000FF
	// C0FFEE
}

func ExampleHexToPacked() {
	fmt.Println(convert.HexToPacked("#FF0000"))
	fmt.Println(convert.HexToPacked("xyz"))
	// Output:
	// 16711680
	// 0
}

func ExamplePackedToRGB() {
	fmt.Println(convert.PackedToRGB(16711680))
	// Output: rgb(255, 0, 0)
}

func ExamplePackedToLab() {
	fmt.Println(convert.PackedToLab(0xFF0000))
	// Output: lab(53.2408, 80.0925, 67.2032)
}
