package its90

// typeS holds the NIST ITS-90 reference functions for type S thermocouples (platinum-10% rhodium / platinum).
var typeS = Table{
	kind:  S,
	name:  "Type S",
	alloy: "platinum-10% rhodium / platinum",
	forward: function{
		domain:    Interval{Low: -50, High: 1768.1},
		inclusive: true,
		segments: []segment{
			{
				// -50°C to 1064.18°C
				upper: 1064.18,
				coefficients: []float64{
					0.000000000000e+00,
					0.540313308631e-02,
					0.125934289740e-04,
					-0.232477968689e-07,
					0.322028823036e-10,
					-0.331465196389e-13,
					0.255744251786e-16,
					-0.125068871393e-19,
					0.271443176145e-23,
				},
			},
			{
				// 1064.18°C to 1664.5°C
				upper: 1664.5,
				coefficients: []float64{
					0.132900444085e+01,
					0.334509311344e-02,
					0.654805192818e-05,
					-0.164856259209e-08,
					0.129989605174e-13,
				},
			},
			{
				// 1664.5°C to 1768.1°C
				upper: 1768.1,
				coefficients: []float64{
					0.146628232636e+03,
					-0.258430516752e+00,
					0.163693574641e-03,
					-0.330439046987e-07,
					-0.943223690612e-14,
				},
			},
		},
	},
	inverse: function{
		domain: Interval{Low: -0.235, High: 18.693},
		segments: []segment{
			{
				// -0.235mV to 1.874mV
				upper: 1.874,
				coefficients: []float64{
					0.00000000e+00,
					1.84949460e+02,
					-8.00504062e+01,
					1.02237430e+02,
					-1.52248592e+02,
					1.88821343e+02,
					-1.59085941e+02,
					8.23027880e+01,
					-2.34181944e+01,
					2.79786260e+00,
				},
			},
			{
				// 1.874mV to 11.950mV
				upper: 11.95,
				coefficients: []float64{
					1.291507177e+01,
					1.466298863e+02,
					-1.534713402e+01,
					3.145945973e+00,
					-4.163257839e-01,
					3.187963771e-02,
					-1.291637500e-03,
					2.183475087e-05,
					-1.447379511e-07,
					8.211272125e-09,
				},
			},
			{
				// 11.950mV to 17.536mV
				upper: 17.536,
				coefficients: []float64{
					-8.087801117e+01,
					1.621573104e+02,
					-8.536869453e+00,
					4.719686976e-01,
					-1.441693666e-02,
					2.081618890e-04,
				},
			},
			{
				// 17.536mV to 18.693mV
				upper: 18.693,
				coefficients: []float64{
					5.333875126e+04,
					-1.235892298e+04,
					1.092657613e+03,
					-4.265693686e+01,
					6.247205420e-01,
				},
			},
		},
	},
	inverseSlack: 0.00056,
	certified:    Interval{Low: -50, High: 1768.1},
}
