package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Caudal/internal/calc/friction"
	"Caudal/internal/fluid"
)

func TestDiameter(t *testing.T) {
	base := Input{
		QM3s:       0.002,
		LengthM:    50,
		RoughnessM: fluid.RoughnessHDPE,
		MaxHfM:     1.0,
		Fluid:      fluid.Water20C(),
		Method:     friction.MethodHaaland,
	}

	t.Run("result meets the target", func(t *testing.T) {
		res, err := Diameter(base)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.HfM, base.MaxHfM)
		assert.Greater(t, res.DiameterM, 0.0)
	})

	t.Run("tighter target needs an equal or larger pipe", func(t *testing.T) {
		loose, err := Diameter(base)
		require.NoError(t, err)

		tight := base
		tight.MaxHfM = 0.05
		tightRes, err := Diameter(tight)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, tightRes.DiameterM, loose.DiameterM)
		assert.LessOrEqual(t, tightRes.HfM, tight.MaxHfM)
	})

	t.Run("invalid target", func(t *testing.T) {
		in := base
		in.MaxHfM = 0
		_, err := Diameter(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, friction.ErrInvalidInput)
	})

	t.Run("invalid flow rate propagates", func(t *testing.T) {
		in := base
		in.QM3s = 0
		_, err := Diameter(in)
		assert.ErrorIs(t, err, friction.ErrInvalidInput)
	})

	t.Run("unreachable target", func(t *testing.T) {
		in := base
		in.QM3s = 5.0     // enormous flow
		in.MaxHfM = 1e-12 // absurdly tight
		_, err := Diameter(in)
		assert.Error(t, err)
	})
}
