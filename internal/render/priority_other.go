//go:build !linux

package render

func setThreadNiceness(int) error {
	return nil
}
