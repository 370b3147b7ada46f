package menu

import "errors"

var ErrMenuItemNotFound = errors.New("menu item not found")
