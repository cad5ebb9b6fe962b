package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	// Spin — накопленное вращение корпуса вокруг своей оси
	Spin float32
}
