package uihelpers

// ComputeChartDimensions applies the width/height clamp rules used for the
// scatter chart. Input: desired raw width (e.g. canvas width). Returns
// clamped width and height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.55)
	if h < 320 {
		h = 320
	}
	if h > 700 {
		h = 700
	}
	return w, h
}

// ComputeContainRect computes where an imgW x imgH image lands inside a
// viewW x viewH area under contain-fit scaling: the drawn rectangle origin,
// its size and the applied scale. A non-positive input yields a zero rect.
func ComputeContainRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, 0, 0, 0
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return drawX, drawY, drawW, drawH, scale
}
