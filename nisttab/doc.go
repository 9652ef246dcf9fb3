// Package nisttab reads NIST ITS-90 thermocouple reference tables and checks reference functions
// against them.
//
// The reader understands the layout of the tables published by the NIST ITS-90 Thermocouple
// Database (DOI: 10.18434/T4S888):
//
//	ITS-90 Table for type K thermocouple
//	 °C      0      -1      -2  ...     -10
//	                        Thermoelectric Voltage in mV
//
//	-270  -6.458
//	-260  -6.441  -6.444  -6.446 ...  -6.458
//	...
//	 °C      0       1       2  ...      10
//	   0   0.000   0.039   0.079 ...   0.397
//
// Each data row starts with a decade temperature followed by up to eleven voltages. The column
// header announces whether the columns step down (0, -1, ..., -10) or up (0, 1, ..., 10) from
// the decade. Any line whose first field is not a number is treated as a header.
//
// The tables are ground truth for tests and for the `thermocouple verify` command; they are
// never consulted at runtime by the reference functions.
package nisttab
