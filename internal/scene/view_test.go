package scene_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenzview/internal/scene"
)

var _ = Describe("View", func() {
	var v scene.View

	key := func(ch rune) scene.Effect {
		return v.Apply(scene.Event{Kind: scene.KeyPress, Rune: ch})
	}
	arrow := func(a scene.Arrow) scene.Effect {
		return v.Apply(scene.Event{Kind: scene.SpecialKey, Arrow: a})
	}
	idle := func(elapsed time.Duration) scene.Effect {
		return v.Apply(scene.Event{Kind: scene.Idle, Elapsed: elapsed})
	}

	BeforeEach(func() {
		v = scene.NewView()
	})

	It("starts at the origin view with unit zoom and animation off", func() {
		Expect(v.Azimuth).To(Equal(0))
		Expect(v.Elevation).To(Equal(0))
		Expect(v.Zoom).To(Equal(1.0))
		Expect(v.Animate).To(BeFalse())
		Expect(v.Params.S).To(Equal(10.0))
		Expect(v.Params.B).To(Equal(2.6666))
		Expect(v.Params.R).To(Equal(28.0))
	})

	Describe("arrow keys", func() {
		It("wraps the azimuth with a truncating remainder", func() {
			v.Azimuth = 357
			for i := 0; i < 4; i++ {
				arrow(scene.ArrowRight)
			}
			Expect(v.Azimuth).To(Equal(17))
		})

		It("keeps negative angles instead of folding them", func() {
			arrow(scene.ArrowLeft)
			Expect(v.Azimuth).To(Equal(-5))
			arrow(scene.ArrowDown)
			Expect(v.Elevation).To(Equal(-5))
		})

		It("moves elevation on up and down", func() {
			arrow(scene.ArrowUp)
			arrow(scene.ArrowUp)
			Expect(v.Elevation).To(Equal(10))
			Expect(v.Azimuth).To(Equal(0))
		})

		It("requests a repaint", func() {
			eff := arrow(scene.ArrowRight)
			Expect(eff.Redraw).To(BeTrue())
			Expect(eff.Quit).To(BeFalse())
		})

		It("does not stop a running animation", func() {
			key('o')
			arrow(scene.ArrowRight)
			Expect(v.Animate).To(BeTrue())
		})
	})

	Describe("zoom", func() {
		It("zooms in by shrinking the homogeneous coordinate", func() {
			key('+')
			key('+')
			key('+')
			Expect(v.Zoom).To(BeNumerically("~", 0.97, 1e-12))
		})

		It("zooms out by growing it", func() {
			key('-')
			Expect(v.Zoom).To(BeNumerically("~", 1.01, 1e-12))
		})

		It("is unclamped and may cross zero", func() {
			for i := 0; i < 150; i++ {
				key('+')
			}
			Expect(v.Zoom).To(BeNumerically("~", -0.5, 1e-9))
		})

		It("stops the animation", func() {
			key('o')
			key('+')
			Expect(v.Animate).To(BeFalse())
		})
	})

	Describe("coefficient keys", func() {
		It("accumulates s in steps of 0.2", func() {
			for i := 0; i < 5; i++ {
				key('s')
			}
			Expect(v.Params.S).To(BeNumerically("~", 11.0, 1e-12))
			key('S')
			Expect(v.Params.S).To(BeNumerically("~", 10.8, 1e-12))
		})

		It("adjusts b by 0.1 and r by 0.5", func() {
			key('b')
			key('B')
			key('B')
			Expect(v.Params.B).To(BeNumerically("~", 2.5666, 1e-12))
			key('r')
			key('r')
			Expect(v.Params.R).To(BeNumerically("~", 29.0, 1e-12))
			key('R')
			Expect(v.Params.R).To(BeNumerically("~", 28.5, 1e-12))
		})

		It("never clamps, even to absurd values", func() {
			for i := 0; i < 60; i++ {
				key('S')
			}
			Expect(v.Params.S).To(BeNumerically("<", 0))
		})

		It("stops the animation", func() {
			key('o')
			key('r')
			Expect(v.Animate).To(BeFalse())
		})
	})

	Describe("animation", func() {
		It("toggles with o and leaves the angles alone", func() {
			v.Azimuth, v.Elevation = 40, -15
			key('o')
			Expect(v.Animate).To(BeTrue())
			Expect(v.Azimuth).To(Equal(40))
			Expect(v.Elevation).To(Equal(-15))
			key('o')
			Expect(v.Animate).To(BeFalse())
		})

		It("spins both angles at 90 degrees per second", func() {
			key('o')
			eff := idle(2 * time.Second)
			Expect(eff.Redraw).To(BeTrue())
			Expect(v.Azimuth).To(Equal(180))
			Expect(v.Elevation).To(Equal(180))
		})

		It("wraps the spin at 360", func() {
			key('o')
			idle(4 * time.Second)
			Expect(v.Azimuth).To(Equal(0))
			idle(4500 * time.Millisecond)
			Expect(v.Azimuth).To(Equal(45))
		})

		It("truncates fractional degrees", func() {
			key('o')
			idle(1119 * time.Millisecond) // 90 * 1.119 = 100.71
			Expect(v.Azimuth).To(Equal(100))
		})

		It("ignores idle ticks while off", func() {
			v.Azimuth = 75
			eff := idle(2 * time.Second)
			Expect(eff.Redraw).To(BeFalse())
			Expect(v.Azimuth).To(Equal(75))
		})
	})

	Describe("axis snaps and reset", func() {
		It("snaps to the x axis from anywhere", func() {
			v.Azimuth, v.Elevation = 123, -77
			key('x')
			Expect(v.Azimuth).To(Equal(90))
			Expect(v.Elevation).To(Equal(0))
		})

		It("snaps to the y and z axes", func() {
			key('y')
			Expect(v.Azimuth).To(Equal(0))
			Expect(v.Elevation).To(Equal(-90))
			key('z')
			Expect(v.Azimuth).To(Equal(0))
			Expect(v.Elevation).To(Equal(0))
		})

		It("resets the angles with 0 and interrupts the animation", func() {
			key('o')
			v.Azimuth, v.Elevation = 200, 30
			key('0')
			Expect(v.Azimuth).To(Equal(0))
			Expect(v.Elevation).To(Equal(0))
			Expect(v.Animate).To(BeFalse())
		})

		It("keeps zoom and coefficients across a reset", func() {
			key('-')
			key('s')
			key('0')
			Expect(v.Zoom).To(BeNumerically("~", 1.01, 1e-12))
			Expect(v.Params.S).To(BeNumerically("~", 10.2, 1e-12))
		})
	})

	Describe("quit and unrecognized input", func() {
		It("quits on escape without touching state", func() {
			eff := key(scene.Escape)
			Expect(eff.Quit).To(BeTrue())
			Expect(v).To(Equal(scene.NewView()))
		})

		It("quits on q", func() {
			Expect(key('q').Quit).To(BeTrue())
		})

		It("repaints on unrecognized keys without changing state", func() {
			eff := key('k')
			Expect(eff.Redraw).To(BeTrue())
			Expect(eff.Quit).To(BeFalse())
			Expect(v).To(Equal(scene.NewView()))
		})
	})

	Describe("frame and resize", func() {
		It("repaints without mutating", func() {
			before := v
			Expect(v.Apply(scene.Event{Kind: scene.Frame}).Redraw).To(BeTrue())
			Expect(v.Apply(scene.Event{Kind: scene.Resize, Width: 80, Height: 24}).Redraw).To(BeTrue())
			Expect(v).To(Equal(before))
		})
	})
})
