package doubleset

import (
	"github.com/allxie/aspiration-takehome/set"
	"github.com/pkg/errors"
)

// Add sums the counts of a and b, capping every count at MaxCount.
// Members of a come first in a's order, then members found only in b.
func Add(a, b *DoubleSet) (*DoubleSet, error) {
	if err := checkOperands("add", a, b); err != nil {
		return nil, err
	}

	sum := New()
	for _, member := range set.Union(a.Members(), b.Members()).Items() {
		sum.members.Set(member, min(a.Count(member)+b.Count(member), MaxCount))
	}

	return sum, nil
}

// Subtract removes b's counts from a. Members whose count drops below
// MinCount are left out, members found only in b are ignored.
func Subtract(a, b *DoubleSet) (*DoubleSet, error) {
	if err := checkOperands("subtract", a, b); err != nil {
		return nil, err
	}

	diff := New()
	a.ForEach(func(member int64, count int) {
		if left := count - b.Count(member); left >= MinCount {
			diff.members.Set(member, left)
		}
	})

	return diff, nil
}

func checkOperands(op string, a, b *DoubleSet) error {
	if a == nil {
		return errors.Wrapf(ErrType, "%s: left operand", op)
	}
	if b == nil {
		return errors.Wrapf(ErrType, "%s: right operand", op)
	}
	return nil
}
