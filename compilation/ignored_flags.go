package compilation

// IgnoredFlags maps a compiler-option name to the number of following
// tokens that should be skipped along with it. Neither the flag nor its
// arguments survive into a Compilation's Flags.
var IgnoredFlags = map[string]int{
	"-MD":      0,
	"-MMD":     0,
	"-MG":      0,
	"-MP":      0,
	"-static":  0,
	"-shared":  0,
	"-s":       0,
	"-rdynamic": 0,
	"-nologo":  0,
	"-EHsc":    0,
	"-EHa":     0,
	"-MF":      1,
	"-MT":      1,
	"-MQ":      1,
	"-l":       1,
	"-L":       1,
	"-u":       1,
	"-z":       1,
	"-T":       1,
	"-Xlinker": 1,
}
