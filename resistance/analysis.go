// SPDX-License-Identifier: MIT

package resistance

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/kirchhoff/core"
)

// Analyze runs Kirchhoff and HittingTimes on g and bundles the results.
func Analyze(g *core.Graph, opts ...Option) (*Analysis, error) {
	o := gatherOptions(opts...)
	kr, err := kirchhoff(g, o)
	if err != nil {
		return nil, err
	}
	H, err := HittingTimes(g, kr)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		KirchhoffResult: kr,
		Hitting:         H,
		Volume:          kr.Laplacian.Volume(),
	}
	o.Logger.WithFields(logrus.Fields{
		"vertices":  kr.Laplacian.Size(),
		"volume":    a.Volume,
		"kirchhoff": a.Index,
	}).Debug("resistance analysis complete")

	return a, nil
}

// HittingTime returns H(u,v), the expected steps of a walk from u to reach v.
// Errors: ErrNilResult, ErrVertexNotFound.
func (a *Analysis) HittingTime(u, v string) (float64, error) {
	if a == nil || a.Hitting == nil {
		return 0, ErrNilResult
	}
	i, j, err := a.pair(u, v)
	if err != nil {
		return 0, err
	}
	h, _ := a.Hitting.At(i, j)

	return h, nil
}

// CommuteTime returns C(u,v) = H(u,v) + H(v,u), which equals Vol(G)·R(u,v).
// Errors: ErrNilResult, ErrVertexNotFound.
func (a *Analysis) CommuteTime(u, v string) (float64, error) {
	huv, err := a.HittingTime(u, v)
	if err != nil {
		return 0, err
	}
	hvu, err := a.HittingTime(v, u)
	if err != nil {
		return 0, err
	}

	return huv + hvu, nil
}
