package neuro_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spikesim/internal/integrators"
	"github.com/san-kum/spikesim/internal/neuro"
	"github.com/san-kum/spikesim/internal/neurons"
	"github.com/san-kum/spikesim/internal/synapses"
)

var _ = Describe("Network", func() {
	var step *integrators.Stepper

	BeforeEach(func() {
		var err error
		step, err = integrators.New(integrators.ExpEuler, 0.01)
		Expect(err).NotTo(HaveOccurred())
	})

	runHH := func(current float64) (float64, *neurons.HodgkinHuxley) {
		hh, err := neurons.NewHodgkinHuxley(1, neurons.DefaultHHParams(), step)
		Expect(err).NotTo(HaveOccurred())

		net := neuro.NewNetwork()
		Expect(net.Add("hh", hh)).To(Succeed())

		count := 0.0
		net.AddStimulus(func(t float64) { hh.Inject(0, current) })
		net.AddObserver(observerFunc(func(t float64) {
			count += hh.Spikes()[0]
		}))

		res, err := net.Run(context.Background(), neuro.Config{Dt: 0.01, Duration: 100})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Steps).To(Equal(10000))
		return count, hh
	}

	It("fires a driven Hodgkin-Huxley neuron", func() {
		spikes, hh := runHH(10)
		Expect(spikes).To(BeNumerically(">=", 1))
		Expect(hh.Voltage()[0]).To(BeNumerically("<", 60))
		Expect(hh.Voltage()[0]).To(BeNumerically(">", -90))
	})

	It("stays silent without input", func() {
		spikes, hh := runHH(0)
		Expect(spikes).To(BeZero())
		Expect(hh.Voltage()[0]).To(BeNumerically("~", -65, 5))
	})

	It("propagates spikes through an exponential synapse", func() {
		src, err := neurons.NewHodgkinHuxley(1, neurons.DefaultHHParams(), step)
		Expect(err).NotTo(HaveOccurred())
		dst, err := neurons.NewHodgkinHuxley(1, neurons.DefaultHHParams(), step)
		Expect(err).NotTo(HaveOccurred())

		conn, err := neuro.ConnectAll(1, 1)
		Expect(err).NotTo(HaveOccurred())

		p := synapses.DefaultExponentialParams()
		p.Weight = 5
		syn, err := synapses.NewExponential(src, dst, conn, p, step)
		Expect(err).NotTo(HaveOccurred())

		net := neuro.NewNetwork()
		Expect(net.Add("src", src)).To(Succeed())
		Expect(net.Add("dst", dst)).To(Succeed())
		Expect(net.Add("syn", syn)).To(Succeed())

		net.AddStimulus(func(t float64) { src.Inject(0, 10) })

		dstSpikes := 0.0
		net.AddObserver(observerFunc(func(t float64) {
			dstSpikes += dst.Spikes()[0]
		}))

		_, err = net.Run(context.Background(), neuro.Config{Dt: 0.01, Duration: 200})
		Expect(err).NotTo(HaveOccurred())
		Expect(dstSpikes).To(BeNumerically(">=", 1))
	})

	It("delivers synaptic drive only after the configured delay", func() {
		src, err := neurons.NewHodgkinHuxley(1, neurons.DefaultHHParams(), step)
		Expect(err).NotTo(HaveOccurred())
		dst, err := neurons.NewHodgkinHuxley(1, neurons.DefaultHHParams(), step)
		Expect(err).NotTo(HaveOccurred())

		conn, err := neuro.ConnectAll(1, 1)
		Expect(err).NotTo(HaveOccurred())

		p := synapses.DefaultVoltageJumpParams()
		p.Delay = 1.0
		syn, err := synapses.NewVoltageJump(src, dst, conn, p, step.Dt())
		Expect(err).NotTo(HaveOccurred())

		net := neuro.NewNetwork()
		Expect(net.Add("src", src)).To(Succeed())
		Expect(net.Add("dst", dst)).To(Succeed())
		Expect(net.Add("syn", syn)).To(Succeed())

		net.AddStimulus(func(t float64) { src.Inject(0, 10) })

		rec := neuro.NewRecorder()
		Expect(rec.Watch("src", src, "spike")).To(Succeed())
		Expect(rec.Watch("dst", dst, "V")).To(Succeed())
		net.AddObserver(rec)

		_, err = net.Run(context.Background(), neuro.Config{Dt: 0.01, Duration: 50})
		Expect(err).NotTo(HaveOccurred())

		spikes := rec.Trace("src", "spike").Unit(0)
		v := rec.Trace("dst", "V").Unit(0)

		first := -1
		for i, s := range spikes {
			if s > 0 {
				first = i
				break
			}
		}
		Expect(first).To(BeNumerically(">=", 0), "source never spiked")

		// The jump cannot land on the target before delay/dt steps
		// after the source spike.
		delaySteps := 100
		for i := first + 1; i < first+delaySteps && i < len(v); i++ {
			Expect(v[i] - v[i-1]).To(BeNumerically("<", 0.5))
		}
	})
})

type observerFunc func(t float64)

func (f observerFunc) OnStep(t float64) { f(t) }
