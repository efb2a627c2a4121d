package app

import (
	"slices"

	"github.com/five82/kiosk/internal/config"
	"github.com/five82/kiosk/internal/icons"
)

// assetNames lists every image the shell can show: the status icon tables,
// the spinner frames and the icons named by the layout.
func assetNames(cfg config.Config) []string {
	var names []string
	names = append(names, icons.BatteryImages(false)...)
	names = append(names, icons.BatteryImages(true)...)
	names = append(names, icons.WifiImages()...)
	names = append(names, icons.SpinnerImages()...)

	top, bottom := cfg.CornerButtons()
	for _, b := range append(top, bottom...) {
		names = append(names, b.Icon)
	}
	for _, it := range cfg.Items() {
		names = append(names, it.Icon)
	}

	names = slices.DeleteFunc(names, func(n string) bool { return n == "" })
	slices.Sort(names)
	return slices.Compact(names)
}
