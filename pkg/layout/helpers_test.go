package layout

func body(text string, x, y, w, h int) Fragment {
	return Fragment{X: x, Y: y, Width: w, Height: h, Type: BodyText, Text: text}
}

func testConfig(columns int) Config {
	cfg := DefaultConfig()
	cfg.Columns = columns
	cfg.Workers = 2
	return cfg
}
