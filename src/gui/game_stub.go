//go:build !ebiten

package gui

import "lifegame/src/universe"

//Run reports that the window front end is not compiled in
func Run(universe.Universe, int) error {
	return ErrNoGUI
}
