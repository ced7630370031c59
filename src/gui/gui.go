package gui

import "errors"

//ErrNoGUI is returned by Run when the binary is built without the ebiten tag
var ErrNoGUI = errors.New("the window front end requires building with the 'ebiten' tag")
