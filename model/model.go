// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"github.com/ClementJ18/finalBIGv2-sub000/math/vec"
)

type Model interface {
	Name() string
	Mins() vec.Vec3
	Maxs() vec.Vec3
}
