package domain_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"domainkit/pkg/domain"
)

// Value-object fixtures.

type money struct {
	amount   int64 // minor units
	currency string
}

func (m money) EqualityComponents() []any {
	return []any{m.amount, m.currency}
}

// priceTag has the same component shape as money but is a different kind.
type priceTag struct {
	amount   int64
	currency string
}

func (p priceTag) EqualityComponents() []any {
	return []any{p.amount, p.currency}
}

// route has two components of the same type, so transposition must matter.
type route struct {
	from string
	to   string
}

func (r route) EqualityComponents() []any {
	return []any{r.from, r.to}
}

// shippingLabel carries an optional note; nil means absent.
type shippingLabel struct {
	carrier string
	note    any
}

func (l shippingLabel) EqualityComponents() []any {
	return []any{l.carrier, l.note}
}

// unitMarker has no equality components at all.
type unitMarker struct{}

func (unitMarker) EqualityComponents() []any {
	return nil
}

// pricedPeriod nests money to exercise recursive comparison.
type pricedPeriod struct {
	days  int
	price money
}

func (p pricedPeriod) EqualityComponents() []any {
	return []any{p.days, p.price}
}

type ValueObjectSuite struct {
	suite.Suite
}

func TestValueObjectSuite(t *testing.T) {
	suite.Run(t, new(ValueObjectSuite))
}

func (s *ValueObjectSuite) TestStructuralEquality() {
	s.Run("same kind with equal components are equal", func() {
		s.True(domain.ValueEqual(money{1000, "USD"}, money{1000, "USD"}))
	})

	s.Run("any differing component breaks equality", func() {
		s.False(domain.ValueEqual(money{1000, "USD"}, money{1000, "EUR"}))
		s.False(domain.ValueEqual(money{1000, "USD"}, money{999, "USD"}))
	})

	s.Run("different kinds with identical components are not equal", func() {
		s.False(domain.ValueEqual(money{1000, "USD"}, priceTag{1000, "USD"}))
	})

	s.Run("nil operands are never equal", func() {
		s.False(domain.ValueEqual(nil, money{1000, "USD"}))
		s.False(domain.ValueEqual(money{1000, "USD"}, nil))
		s.False(domain.ValueEqual(nil, nil))
	})

	s.Run("absent components compare equal to absent components", func() {
		s.True(domain.ValueEqual(
			shippingLabel{carrier: "dhl"},
			shippingLabel{carrier: "dhl"},
		))
		s.False(domain.ValueEqual(
			shippingLabel{carrier: "dhl"},
			shippingLabel{carrier: "dhl", note: "fragile"},
		))
	})

	s.Run("nested value objects compare structurally", func() {
		a := pricedPeriod{days: 30, price: money{1000, "USD"}}
		b := pricedPeriod{days: 30, price: money{1000, "USD"}}
		c := pricedPeriod{days: 30, price: money{1000, "EUR"}}
		s.True(domain.ValueEqual(a, b))
		s.False(domain.ValueEqual(a, c))
	})
}

func (s *ValueObjectSuite) TestZeroComponentKind() {
	s.Run("all instances are mutually equal", func() {
		s.True(domain.ValueEqual(unitMarker{}, unitMarker{}))
	})

	s.Run("hash and equality never panic", func() {
		s.NotPanics(func() {
			_ = domain.ValueHash(unitMarker{})
			_ = domain.ValueEqual(unitMarker{}, unitMarker{})
		})
	})

	s.Run("equal instances share a hash", func() {
		s.Equal(domain.ValueHash(unitMarker{}), domain.ValueHash(unitMarker{}))
	})
}

func (s *ValueObjectSuite) TestHashConsistency() {
	s.Run("equal objects produce equal hashes", func() {
		a := money{1000, "USD"}
		b := money{1000, "USD"}
		s.Require().True(domain.ValueEqual(a, b))
		s.Equal(domain.ValueHash(a), domain.ValueHash(b))
	})

	s.Run("differing components produce different hashes", func() {
		s.NotEqual(
			domain.ValueHash(money{1000, "USD"}),
			domain.ValueHash(money{1000, "EUR"}),
		)
	})

	s.Run("combiner is order-sensitive for transposed components", func() {
		s.NotEqual(
			domain.ValueHash(route{from: "AMS", to: "LIS"}),
			domain.ValueHash(route{from: "LIS", to: "AMS"}),
		)
	})

	s.Run("absent components hash consistently", func() {
		a := shippingLabel{carrier: "dhl"}
		b := shippingLabel{carrier: "dhl"}
		s.Equal(domain.ValueHash(a), domain.ValueHash(b))
	})

	s.Run("nested value objects hash through their own components", func() {
		a := pricedPeriod{days: 30, price: money{1000, "USD"}}
		b := pricedPeriod{days: 30, price: money{1000, "USD"}}
		s.Equal(domain.ValueHash(a), domain.ValueHash(b))
	})
}
