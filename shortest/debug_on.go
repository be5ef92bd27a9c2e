//go:build floatdebug

package shortest

const debug = true
