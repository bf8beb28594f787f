// SPDX-License-Identifier: MIT

// Package gwas: functional configuration for the association entrypoint.

package gwas

import "github.com/katalvlaran/gwalin/linreg"

// DefaultAddIntercept controls whether a column of ones is prepended to the
// core covariates. Regression statistics are only valid with an intercept
// present; disable this only when the dataset already carries an explicit
// ones covariate.
const DefaultAddIntercept = true

// Option mutates entrypoint options.
type Option func(*options)

type options struct {
	intercept bool
	regress   []linreg.Option
}

// WithIntercept toggles automatic intercept injection (default true).
// WithIntercept(true) is exactly equivalent to supplying an explicit
// all-ones covariate column with WithIntercept(false).
func WithIntercept(on bool) Option {
	return func(o *options) { o.intercept = on }
}

// WithRegression forwards options (tile sizes, worker count) to the
// underlying linreg.Regress call.
func WithRegression(opts ...linreg.Option) Option {
	return func(o *options) { o.regress = append(o.regress, opts...) }
}

func gatherOptions(opts ...Option) options {
	o := options{intercept: DefaultAddIntercept}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
