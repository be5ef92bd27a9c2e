package integer

// largePow5 is 5^largePow5Step as little-endian limbs.
var largePow5 = [...]uint64{
	0x13a1d71cff1b172d,
	0x7f682d3defa07617,
	0x3f0131e7ff8c90c0,
	0x917b01773fdcb9fe,
	0x02c06b9d16c407a7,
}

const largePow5Step = 135

// smallPow5 holds the powers of five that fit in a limb.
var smallPow5 = [...]uint64{
	1,
	5,
	25,
	125,
	625,
	3125,
	15625,
	78125,
	390625,
	1953125,
	9765625,
	48828125,
	244140625,
	1220703125,
	6103515625,
	30517578125,
	152587890625,
	762939453125,
	3814697265625,
	19073486328125,
	95367431640625,
	476837158203125,
	2384185791015625,
	11920928955078125,
	59604644775390625,
	298023223876953125,
	1490116119384765625,
	7450580596923828125,
}

const smallPow5Step = 27
