// Command projectile runs the projectile motion demo on the f32 kernel.
package main

import (
	"flag"
	"fmt"

	"github.com/pfcm/fmath/f32"
)

var (
	velocityFlag = flag.Float64("velocity", 50, "launch speed in m/s")
	angleFlag    = flag.Float64("angle", 45, "launch angle in degrees")
	gravityFlag  = flag.Float64("gravity", 9.81, "gravitational acceleration in m/s²")
)

func main() {
	flag.Parse()

	velocity := float32(*velocityFlag)
	gravity := float32(*gravityFlag)
	theta := f32.Deg2Rad(float32(*angleFlag))

	// T = 2·v·sin(θ) / g
	flightTime := 2 * velocity * f32.Sin(theta) / gravity
	// H = v²·sin²(θ) / 2g
	maxHeight := f32.Pow(velocity, 2) * f32.Pow(f32.Sin(theta), 2) / (2 * gravity)
	// R = v²·sin(2θ) / g
	dist := f32.Pow(velocity, 2) * f32.Sin(2*theta) / gravity

	fmt.Printf("Velocity:    %.2f m/s\n", velocity)
	fmt.Printf("Angle:       %.2f deg\n", *angleFlag)
	fmt.Printf("Flight time: %.4f s\n", flightTime)
	fmt.Printf("Max height:  %.4f m\n", maxHeight)
	fmt.Printf("Range:       %.4f m\n", dist)
}
