package scancode_test

import (
	"fmt"

	"github.com/ardnew/softps2/hal/sim"
	"github.com/ardnew/softps2/scancode"
)

func ExampleDecoder_Poll() {
	// a pressed, a released, up arrow pressed
	regs := sim.New(0x1C, 0xF0, 0x1C, 0xE0, 0x75)
	dec := scancode.NewDecoder(regs)

	for {
		ev, ok := dec.Poll()
		if !ok {
			break
		}
		fmt.Println(ev)
	}
	// Output:
	// a down
	// a up
	// up down
}

func ExampleDecoder_PollCode() {
	dec := scancode.NewDecoder(sim.New(0xE0, 0x75))
	fmt.Printf("%#x\n", dec.PollCode())
	fmt.Printf("%#x\n", dec.PollCode())
	// Output:
	// 0x8000008e
	// 0xffffffff
}

func ExampleEncode() {
	data, err := scancode.Encode(scancode.KeyLeftArrow, false)
	fmt.Printf("% x %v\n", data, err)
	// Output: e0 f0 6b <nil>
}

func ExampleEncodeText() {
	data, err := scancode.EncodeText("ok")
	fmt.Printf("% x %v\n", data, err)
	// Output: 44 f0 44 42 f0 42 <nil>
}
