package main

import (
	"flag"
	"fmt"
	"github.com/swdee/go-i2c"
	"github.com/swdee/go-vl53l5cx"
	"github.com/swdee/go-vl53l5cx/fake"
	"github.com/swdee/go-vl53l5cx/platform"
	"log"
	"os"
	"time"
)

func main() {

	probe := flag.Bool("probe", false, "Probe the I2C bus for a VL53L5CX and exit")
	i2cbus := flag.String("b", "/dev/i2c-0", "Path to I2C bus to use with -probe")
	res := flag.String("res", "4x4", "Zone resolution, 4x4 or 8x8")
	freq := flag.Int("freq", 10, "Ranging frequency in Hz")
	frames := flag.Int("frames", 4, "Number of frames to read")
	autonomous := flag.Bool("autonomous", false, "Range in autonomous mode with a 20ms integration time")
	motion := flag.Bool("motion", false, "Enable the motion indicator over 1000-2000mm")
	xtalk := flag.Bool("xtalk", false, "Run crosstalk calibration after ranging stops")
	verbose := flag.Bool("v", false, "Log facade debug output")
	flag.Parse()

	if *probe {
		probeBus(*i2cbus)
		return
	}

	if *freq < 1 || *freq > 255 {
		log.Fatalf("Ranging frequency %dHz is out of range", *freq)
	}

	resolution := vl53l5cx.Resolution4x4

	if *res == "8x8" {
		resolution = vl53l5cx.Resolution8x8
	}

	opts := []vl53l5cx.Option{
		vl53l5cx.WithResolution(resolution),
		vl53l5cx.WithRangingFrequency(uint8(*freq)),
	}

	if *verbose {
		opts = append(opts, vl53l5cx.WithLogger(log.New(os.Stderr, "vl53l5cx: ", log.LstdFlags)))
	}

	// the fake engine ranges without hardware, swap in a real engine
	// binding to drive a sensor
	engine := fake.New()

	var sensor *vl53l5cx.VL53L5CX
	var err error

	if *autonomous {
		sensor, err = vl53l5cx.NewAutonomous(engine, 20, opts...)
	} else {
		sensor, err = vl53l5cx.New(engine, opts...)
	}

	if err != nil {
		log.Fatal(err)
	}

	if err := sensor.Begin(); err != nil {
		log.Fatalf("Begin failed: %v", err)
	}

	if *motion {
		if err := sensor.AddMotionIndicator(1000, 2000); err != nil {
			log.Fatalf("Motion indicator failed: %v", err)
		}
	}

	// Read measurement frames
	for i := 0; i < *frames; i++ {

		if err := sensor.NextFrame(); err != nil {
			log.Printf("Read error: %v", err)
			continue
		}

		printFrame(sensor, resolution)
		time.Sleep(100 * time.Millisecond)
	}

	if err := sensor.StopRanging(); err != nil {
		log.Fatalf("Stop ranging failed: %v", err)
	}

	if *xtalk {
		calibrate(sensor)
	}
}

// printFrame prints the first target of every zone as a distance grid,
// blanking zones without a valid measurement
func printFrame(sensor *vl53l5cx.VL53L5CX, resolution vl53l5cx.Resolution) {

	cols := 4

	if resolution == vl53l5cx.Resolution8x8 {
		cols = 8
	}

	fmt.Printf("frame %d\n", sensor.GetStreamCount())

	for row := 0; row < cols; row++ {
		for col := 0; col < cols; col++ {

			zone := row*cols + col

			if !vl53l5cx.TargetValid(sensor.GetTargetStatus(zone, 0)) {
				fmt.Printf("%6s", "-")
				continue
			}

			fmt.Printf("%6d", sensor.GetDistance(zone, 0))
		}

		fmt.Println()
	}
}

// calibrate runs crosstalk calibration against a 3% reflectance target at
// 600mm, the setup ST recommends, then reads the calibration data back and
// restores it
func calibrate(sensor *vl53l5cx.VL53L5CX) {

	if err := sensor.CalibrateXtalk(3, 4, 600); err != nil {
		log.Fatalf("Xtalk calibration failed: %v", err)
	}

	data := make([]byte, vl53l5cx.XtalkDataSize)

	if err := sensor.GetXtalkCalibrationData(data); err != nil {
		log.Fatalf("Get xtalk data failed: %v", err)
	}

	if err := sensor.SetXtalkCalibrationData(data); err != nil {
		log.Fatalf("Set xtalk data failed: %v", err)
	}

	log.Printf("Xtalk calibration data saved, %d bytes", len(data))
}

// probeBus opens the I2C bus and checks whether a VL53L5CX answers on it
func probeBus(bus string) {

	i2c, err := i2c.New(vl53l5cx.Address, bus)

	if err != nil {
		log.Fatal(err)
	}

	defer i2c.Close()

	alive, err := platform.Detect(platform.NewGoI2C(i2c))

	if err != nil {
		log.Fatalf("Probe failed: %v", err)
	}

	if !alive {
		log.Fatalf("No VL53L5CX found on %s", bus)
	}

	fmt.Printf("VL53L5CX detected on %s\n", bus)
}
