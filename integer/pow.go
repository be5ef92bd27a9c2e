package integer

// Pow2 sets i to i * 2^n.
func (i *Int) Pow2(n uint) error {
	return i.Shl(n)
}

// Pow5 sets i to i * 5^n.
func (i *Int) Pow5(n uint) error {
	for n >= largePow5Step {
		err := i.MulLarge(largePow5[:])
		if err != nil {
			return err
		}
		n -= largePow5Step
	}

	for n >= smallPow5Step {
		err := i.MulSmall(smallPow5[smallPow5Step])
		if err != nil {
			return err
		}
		n -= smallPow5Step
	}

	if n == 0 {
		return nil
	}

	return i.MulSmall(smallPow5[n])
}

// Pow10 sets i to i * 10^n.
func (i *Int) Pow10(n uint) error {
	err := i.Pow5(n)
	if err != nil {
		return err
	}

	return i.Pow2(n)
}
