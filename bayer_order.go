package picamraw

// Base orders per sensor, before orientation flips: OV5647 reads out BGGR,
// IMX219 reads out RGGB.
var baseOrder = map[CameraVersion]BayerOrder{
	CameraV1: OrderBGGR,
	CameraV2: OrderRGGB,
}

// Flip transitions of the 2x2 tile. A horizontal flip swaps the tile's
// columns, a vertical flip swaps its rows; both together are a 180 degree
// rotation.
var (
	hFlipOrder = [4]BayerOrder{
		OrderRGGB: OrderGRBG,
		OrderGBRG: OrderBGGR,
		OrderBGGR: OrderGBRG,
		OrderGRBG: OrderRGGB,
	}
	vFlipOrder = [4]BayerOrder{
		OrderRGGB: OrderGBRG,
		OrderGBRG: OrderRGGB,
		OrderBGGR: OrderGRBG,
		OrderGRBG: OrderBGGR,
	}
)

// ResolveBayerOrder derives the color filter arrangement of the stored
// array from the camera version and the capture's orientation flips.
func ResolveBayerOrder(version CameraVersion, hFlip, vFlip bool) BayerOrder {
	order := baseOrder[version]
	if hFlip {
		order = hFlipOrder[order]
	}
	if vFlip {
		order = vFlipOrder[order]
	}
	return order
}

// orderFromBroadcom maps the bayer_order byte of the embedded raw header to
// the enum.
var orderFromBroadcom = [4]BayerOrder{OrderRGGB, OrderGBRG, OrderBGGR, OrderGRBG}

// channelCoords lists, per order, the (y,x) position within the 2x2 tile of
// R, the two greens, and B.
var channelCoords = [4]struct{ ry, rx, g1y, g1x, g2y, g2x, by, bx int }{
	OrderRGGB: {0, 0, 1, 0, 0, 1, 1, 1},
	OrderGBRG: {1, 0, 0, 0, 1, 1, 0, 1},
	OrderBGGR: {1, 1, 0, 1, 1, 0, 0, 0},
	OrderGRBG: {0, 1, 1, 1, 0, 0, 1, 0},
}
