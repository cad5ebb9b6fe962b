package component

// Lives — оставшиеся жизни базы.
type Lives struct {
	Value int
}

// LoseLife уменьшает жизни, не опускаясь ниже нуля.
func (l *Lives) LoseLife() {
	if l.Value > 0 {
		l.Value--
	}
}
