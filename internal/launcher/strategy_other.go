//go:build !windows && !darwin && !linux

package launcher

func platformStrategy() Strategy {
	return unsupportedStrategy{}
}
