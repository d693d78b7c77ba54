package orderrepo

// WithVisibleBatchSize shrinks FindVisible pages so tests can cross page
// boundaries with a handful of rows.
func (r *GormOrderRepository) WithVisibleBatchSize(n int) *GormOrderRepository {
	r.visibleBatchSize = max(n, 1)
	return r
}
