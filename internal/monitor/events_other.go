//go:build !linux

package monitor

// Hotplug monitoring needs netlink; elsewhere the registry only gets the
// initial enumeration.
func (w *Watcher) startEvents() error {
	return nil
}
