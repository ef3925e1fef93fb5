package vector

// emplace constructs value in the uninitialized slot i. It leaves size alone;
// callers bump it only once construction has succeeded.
func (v *Vector[T]) emplace(i int, value T) error {
	return v.provider.Construct(&v.buf[i], value)
}

// destroy ends the lifetime of slot i. Callers shrink size before calling it.
func (v *Vector[T]) destroy(i int) {
	v.provider.Destroy(&v.buf[i])
}

// appendAll constructs values after the live prefix. On failure the elements
// it added are destroyed again and the error is returned.
func (v *Vector[T]) appendAll(values []T) error {
	start := v.size
	for _, value := range values {
		if err := v.emplace(v.size, value); err != nil {
			v.truncate(start)
			return err
		}
		v.size++
	}
	return nil
}

// fill constructs copies of value until size reaches n, undoing its own work
// on failure.
func (v *Vector[T]) fill(n int, value T) error {
	start := v.size
	for v.size < n {
		if err := v.emplace(v.size, value); err != nil {
			v.truncate(start)
			return err
		}
		v.size++
	}
	return nil
}

// truncate pops from the tail until size is n.
func (v *Vector[T]) truncate(n int) {
	for v.size > n {
		v.size--
		v.destroy(v.size)
	}
}
