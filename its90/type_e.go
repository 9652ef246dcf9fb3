package its90

// typeE holds the NIST ITS-90 reference functions for type E thermocouples (chromel / constantan).
var typeE = Table{
	kind:  E,
	name:  "Type E",
	alloy: "chromel / constantan",
	forward: function{
		domain:    Interval{Low: -270, High: 1000},
		inclusive: true,
		segments: []segment{
			{
				// -270°C to 0°C
				upper: 0,
				coefficients: []float64{
					0.000000000000e+00,
					0.586655087080e-01,
					0.454109771240e-04,
					-0.779980486860e-06,
					-0.258001608430e-07,
					-0.594525830570e-09,
					-0.932140586670e-11,
					-0.102876055340e-12,
					-0.803701236210e-15,
					-0.439794973910e-17,
					-0.164147763550e-19,
					-0.396736195160e-22,
					-0.558273287210e-25,
					-0.346578420130e-28,
				},
			},
			{
				// 0°C to 1000°C
				upper: 1000,
				coefficients: []float64{
					0.000000000000e+00,
					0.586655087100e-01,
					0.450322755820e-04,
					0.289084072120e-07,
					-0.330568966520e-09,
					0.650244032700e-12,
					-0.191974955040e-15,
					-0.125366004970e-17,
					0.214892175690e-20,
					-0.143880417820e-23,
					0.359608994810e-27,
				},
			},
		},
	},
	inverse: function{
		domain: Interval{Low: -8.825, High: 76.373},
		segments: []segment{
			{
				// -8.825mV to 0mV
				upper: 0,
				coefficients: []float64{
					0.0000000e+00,
					1.6977288e+01,
					-4.3514970e-01,
					-1.5859697e-01,
					-9.2502871e-02,
					-2.6084314e-02,
					-4.1360199e-03,
					-3.4034030e-04,
					-1.1564890e-05,
				},
			},
			{
				// 0mV to 76.373mV
				upper: 76.373,
				coefficients: []float64{
					0.0000000e+00,
					1.7057035e+01,
					-2.3301759e-01,
					6.5435585e-03,
					-7.3562749e-05,
					-1.7896001e-06,
					8.4036165e-08,
					-1.3735879e-09,
					1.0629823e-11,
					-3.2447087e-14,
				},
			},
		},
	},
	inverseSlack: 0.0005,
	certified:    Interval{Low: -200, High: 1000},
}
