package service

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAdvice(t *testing.T) {
	tests := []struct {
		avg  float64
		want AdviceCategory
	}{
		{-1, TooLittle},
		{0, TooLittle},
		{5.99, TooLittle},
		{math.Nextafter(6, 0), TooLittle},
		{6.00, Healthy},
		{7.99, Healthy},
		{math.Nextafter(8, 0), Healthy},
		{8.00, Mixed},
		{8.5, Mixed},
		{8.99, Mixed},
		{math.Nextafter(9, 0), Mixed},
		{9.00, TooMuch},
		{12, TooMuch},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.avg), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAdvice(tt.avg))
		})
	}
}

func TestAdviceCategory_TextAndName(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range []AdviceCategory{TooLittle, Healthy, Mixed, TooMuch} {
		assert.NotEmpty(t, c.Text())
		assert.NotEqual(t, "unknown", c.String())
		assert.False(t, seen[c.Text()], "advice text for %s is not unique", c)
		seen[c.Text()] = true
	}
	assert.Equal(t, "unknown", AdviceCategory(42).String())
	assert.Contains(t, Healthy.Text(), "healthy range")
	assert.Contains(t, TooMuch.Text(), "oversleeping")
}
