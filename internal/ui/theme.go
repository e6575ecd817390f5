package ui

import "image/color"

var (
	colBackground = color.RGBA{236, 240, 244, 255}
	colToolbar    = color.RGBA{32, 44, 58, 255}
	colToolbarTxt = color.RGBA{240, 244, 248, 255}
	colSheet      = color.RGBA{214, 226, 236, 255}

	colButtonBorder = color.RGBA{240, 240, 240, 255}
	colNewSheet     = color.RGBA{40, 140, 200, 255}
	colSoundOn      = color.RGBA{40, 170, 90, 255}
	colSoundOff     = color.RGBA{150, 60, 60, 255}
	colSliderTrack  = color.RGBA{80, 92, 106, 255}
	colSliderKnob   = color.RGBA{220, 226, 232, 255}

	colBubble       = color.RGBA{196, 228, 250, 255}
	colBubbleShine  = color.RGBA{255, 255, 255, 200}
	colBubbleEdge   = color.RGBA{120, 170, 210, 255}
	colPopped       = color.RGBA{170, 184, 196, 255}
	colPoppedCrease = color.RGBA{130, 142, 154, 255}
	colFocus        = color.RGBA{255, 170, 0, 255}
	colComplete     = color.RGBA{40, 170, 90, 255}
)
