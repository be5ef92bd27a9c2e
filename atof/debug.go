//go:build !floatdebug

package atof

const debug = false
