package growth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/growth"
)

func TestPoliciesAdvanceCapacity(t *testing.T) {
	policies := map[string]api.GrowthPolicy{
		"doubling":     growth.Doubling{},
		"doubling-x3":  growth.Doubling{Factor: 3},
		"doubling-b1":  growth.Doubling{Base: 1},
		"step-default": growth.Step{},
		"step-16":      growth.Step{N: 16},
		"pow2":         growth.PowerOfTwo{},
	}
	for name, p := range policies {
		t.Run(name, func(t *testing.T) {
			for current := 0; current < 10000; current = p.NextCapacity(current) {
				next := p.NextCapacity(current)
				if next <= current {
					t.Fatalf("policy stalled at %d (next %d)", current, next)
				}
			}
		})
	}
}

func TestDoublingSequence(t *testing.T) {
	p := growth.Doubling{}
	assert.Equal(t, growth.DefaultBase, p.NextCapacity(0))
	assert.Equal(t, 16, p.NextCapacity(8))
	assert.Equal(t, 32, p.NextCapacity(16))

	x3 := growth.Doubling{Factor: 3, Base: 2}
	assert.Equal(t, 2, x3.NextCapacity(0))
	assert.Equal(t, 6, x3.NextCapacity(2))
	assert.Equal(t, 18, x3.NextCapacity(6))
}

func TestStepSequence(t *testing.T) {
	minimal := growth.Step{}
	assert.Equal(t, 1, minimal.NextCapacity(0))
	assert.Equal(t, 6, minimal.NextCapacity(5))

	wide := growth.Step{N: 10}
	assert.Equal(t, 10, wide.NextCapacity(0))
	assert.Equal(t, 15, wide.NextCapacity(5))
}

func TestPowerOfTwoSequence(t *testing.T) {
	p := growth.PowerOfTwo{}
	assert.Equal(t, 1, p.NextCapacity(0))
	assert.Equal(t, 2, p.NextCapacity(1))
	assert.Equal(t, 4, p.NextCapacity(2))
	assert.Equal(t, 4, p.NextCapacity(3))
	assert.Equal(t, 8, p.NextCapacity(4))
	assert.Equal(t, 128, p.NextCapacity(65))
}

func TestGrowthFuncAdapter(t *testing.T) {
	p := api.GrowthFunc(func(current int) int { return current + 7 })
	assert.Equal(t, 7, p.NextCapacity(0))
	assert.Equal(t, 14, p.NextCapacity(7))
}
