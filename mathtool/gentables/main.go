// Command gentables regenerates the GF(2^8) tables field_tables.go builds
// at runtime and prints them as Go literals, for inspection or for pinning
// a future polynomial change. It is a standalone tool, not imported by the
// library; the library builds the same tables itself at Field init. Fixed
// to the one polynomial the library actually uses, 0x11D (0x1D as the
// reduction constant).
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
)

const polynomial = 0x1D

func main() {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	exp, log16 := genExpLog()
	mul := genMul(exp, log16)
	div := genDiv(exp, log16)
	inv := genInv(exp, log16)
	sqr := genSqr(mul)
	lowY, highY := genShuffleTables(mul)

	if err := printTable(w, "exp", exp[:]); err != nil {
		fail(err)
	}
	if err := printTable(w, "log", log16[:]); err != nil {
		fail(err)
	}
	if err := printTable(w, "mul", mul[:]); err != nil {
		fail(err)
	}
	if err := printTable(w, "div", div[:]); err != nil {
		fail(err)
	}
	if err := printTable(w, "inv", inv[:]); err != nil {
		fail(err)
	}
	if err := printTable(w, "sqr", sqr[:]); err != nil {
		fail(err)
	}
	if err := printTable(w, "lowY", lowY); err != nil {
		fail(err)
	}
	if err := printTable(w, "highY", highY); err != nil {
		fail(err)
	}
}

func fail(err error) { log.Fatalln(err) }

func printTable(w *bufio.Writer, name string, v interface{}) error {
	_, err := fmt.Fprintf(w, "%s := %#v\n", name, v)
	return err
}

func genExpLog() (exp [512*2 + 1]byte, log16 [256]uint16) {
	x := byte(1)
	for i := 0; i < 255; i++ {
		exp[i] = x
		log16[x] = uint16(i)

		hi := x & 0x80
		x <<= 1
		if hi != 0 {
			x ^= polynomial
		}
	}
	for i := 255; i < len(exp); i++ {
		exp[i] = exp[i-255]
	}
	return
}

func genMul(exp [512*2 + 1]byte, log16 [256]uint16) (mul [256 * 256]byte) {
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			if x == 0 || y == 0 {
				continue
			}
			mul[(y<<8)+x] = exp[int(log16[x])+int(log16[y])]
		}
	}
	return
}

func genDiv(exp [512*2 + 1]byte, log16 [256]uint16) (div [256 * 256]byte) {
	for y := 1; y < 256; y++ {
		for x := 0; x < 256; x++ {
			if x == 0 {
				continue
			}
			d := int(log16[x]) - int(log16[y])
			if d < 0 {
				d += 255
			}
			div[(y<<8)+x] = exp[d]
		}
	}
	return
}

func genInv(exp [512*2 + 1]byte, log16 [256]uint16) (inv [256]byte) {
	for x := 1; x < 256; x++ {
		inv[x] = exp[255-int(log16[x])]
	}
	return
}

func genSqr(mul [256 * 256]byte) (sqr [256]byte) {
	for x := 0; x < 256; x++ {
		sqr[x] = mul[(x<<8)+x]
	}
	return
}

func genShuffleTables(mul [256 * 256]byte) (lowY, highY [][16]byte) {
	lowY = make([][16]byte, 256)
	highY = make([][16]byte, 256)
	for y := 0; y < 256; y++ {
		for n := 0; n < 16; n++ {
			lowY[y][n] = mul[(y<<8)+n]
			highY[y][n] = mul[(y<<8)+(n<<4)]
		}
	}
	return
}
