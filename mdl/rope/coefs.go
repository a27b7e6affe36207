// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

// Coefs holds material functions and derivatives evaluated at one trial stress
//  Psi is the reduced-time increment over dt:
//    dPsi  = dt / a0
//    d2Psi = ∂dPsi/∂σ
//    d3Psi = ∂²dPsi/∂σ²
type Coefs struct {
	Sig float64 // stress where functions were evaluated

	A0, DA0, D2A0 float64 // a0 and derivatives
	G0, DG0, D2G0 float64 // g0 and derivatives
	G1, DG1, D2G1 float64 // g1 and derivatives
	G2, DG2, D2G2 float64 // g2 and derivatives
	Ep, DEp, D2Ep float64 // Ep and derivatives
	Np, DNp, D2Np float64 // np and derivatives
	H, DH, D2H    float64 // H and derivatives

	DPsi, D2Psi, D3Psi float64 // reduced time increment and derivatives
	Dnpm1              float64 // ∂(1/np)/∂σ
	DEpm1              float64 // ∂(1/Ep)/∂σ
}

// EvaluateAt evaluates all material functions at stress σ for time increment dt
func (o *Model) EvaluateAt(σ, dt float64, c *Coefs) (err error) {
	c.Sig = σ
	if c.A0, c.DA0, c.D2A0, err = o.A0.Eval(σ); err != nil {
		return
	}
	if c.G0, c.DG0, c.D2G0, err = o.G0.Eval(σ); err != nil {
		return
	}
	if c.G1, c.DG1, c.D2G1, err = o.G1.Eval(σ); err != nil {
		return
	}
	if c.G2, c.DG2, c.D2G2, err = o.G2.Eval(σ); err != nil {
		return
	}
	if c.Ep, c.DEp, c.D2Ep, err = o.Ep.Eval(σ); err != nil {
		return
	}
	if c.Np, c.DNp, c.D2Np, err = o.Np.Eval(σ); err != nil {
		return
	}
	if c.H, c.DH, c.D2H, err = o.Hvp.Eval(σ); err != nil {
		return
	}
	a0, da0 := c.A0, c.DA0
	c.DPsi = dt / a0
	c.D2Psi = -da0 * dt / (a0 * a0)
	c.D3Psi = (2*da0*da0/a0 - c.D2A0) * dt / (a0 * a0)
	c.Dnpm1 = -c.DNp / (c.Np * c.Np)
	c.DEpm1 = -c.DEp / (c.Ep * c.Ep)
	return
}
