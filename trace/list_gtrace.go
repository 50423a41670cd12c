package trace

// listComposeOptions is a holder of options
type listComposeOptions struct {
	panicCallback func(e interface{})
}

// ListComposeOption specified List compose option
type ListComposeOption func(o *listComposeOptions)

// WithListPanicCallback specified behavior on panic
func WithListPanicCallback(cb func(e interface{})) ListComposeOption {
	return func(o *listComposeOptions) {
		o.panicCallback = cb
	}
}

// Compose returns a new List which has functional fields composed both from t and x.
// A nil t or x contributes no callbacks.
func (t *List) Compose(x *List, opts ...ListComposeOption) *List {
	var ret List
	options := listComposeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if t == nil {
		t = &List{}
	}
	if x == nil {
		x = &List{}
	}
	{
		h1 := t.OnSort
		h2 := x.OnSort
		ret.OnSort = func(info ListSortStartInfo) func(ListSortDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(ListSortDoneInfo)
			if h1 != nil {
				r = h1(info)
			}
			if h2 != nil {
				r1 = h2(info)
			}

			return func(info ListSortDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(info)
				}
				if r1 != nil {
					r1(info)
				}
			}
		}
	}
	{
		h1 := t.OnSplit
		h2 := x.OnSplit
		ret.OnSplit = func(info ListSplitStartInfo) func(ListSplitDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(ListSplitDoneInfo)
			if h1 != nil {
				r = h1(info)
			}
			if h2 != nil {
				r1 = h2(info)
			}

			return func(info ListSplitDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(info)
				}
				if r1 != nil {
					r1(info)
				}
			}
		}
	}
	{
		h1 := t.OnMerge
		h2 := x.OnMerge
		ret.OnMerge = func(info ListMergeStartInfo) func(ListMergeDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(ListMergeDoneInfo)
			if h1 != nil {
				r = h1(info)
			}
			if h2 != nil {
				r1 = h2(info)
			}

			return func(info ListMergeDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(info)
				}
				if r1 != nil {
					r1(info)
				}
			}
		}
	}
	{
		h1 := t.OnClear
		h2 := x.OnClear
		ret.OnClear = func(info ListClearStartInfo) func(ListClearDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(ListClearDoneInfo)
			if h1 != nil {
				r = h1(info)
			}
			if h2 != nil {
				r1 = h2(info)
			}

			return func(info ListClearDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(info)
				}
				if r1 != nil {
					r1(info)
				}
			}
		}
	}

	return &ret
}

func (t *List) onSort(info ListSortStartInfo) func(ListSortDoneInfo) {
	if t == nil || t.OnSort == nil {
		return func(ListSortDoneInfo) {}
	}
	fn := t.OnSort
	res := fn(info)
	if res == nil {
		return func(ListSortDoneInfo) {}
	}

	return res
}

func (t *List) onSplit(info ListSplitStartInfo) func(ListSplitDoneInfo) {
	if t == nil || t.OnSplit == nil {
		return func(ListSplitDoneInfo) {}
	}
	fn := t.OnSplit
	res := fn(info)
	if res == nil {
		return func(ListSplitDoneInfo) {}
	}

	return res
}

func (t *List) onMerge(info ListMergeStartInfo) func(ListMergeDoneInfo) {
	if t == nil || t.OnMerge == nil {
		return func(ListMergeDoneInfo) {}
	}
	fn := t.OnMerge
	res := fn(info)
	if res == nil {
		return func(ListMergeDoneInfo) {}
	}

	return res
}

func (t *List) onClear(info ListClearStartInfo) func(ListClearDoneInfo) {
	if t == nil || t.OnClear == nil {
		return func(ListClearDoneInfo) {}
	}
	fn := t.OnClear
	res := fn(info)
	if res == nil {
		return func(ListClearDoneInfo) {}
	}

	return res
}

func ListOnSort(t *List, size int) func(size int) {
	var p ListSortStartInfo
	p.Size = size
	res := t.onSort(p)

	return func(size int) {
		var p ListSortDoneInfo
		p.Size = size
		res(p)
	}
}

func ListOnSplit(t *List, size int) func(size int, siblingSize int) {
	var p ListSplitStartInfo
	p.Size = size
	res := t.onSplit(p)

	return func(size int, siblingSize int) {
		var p ListSplitDoneInfo
		p.Size = size
		p.SiblingSize = siblingSize
		res(p)
	}
}

func ListOnMerge(t *List, size int, otherSize int) func(size int) {
	var p ListMergeStartInfo
	p.Size = size
	p.OtherSize = otherSize
	res := t.onMerge(p)

	return func(size int) {
		var p ListMergeDoneInfo
		p.Size = size
		res(p)
	}
}

func ListOnClear(t *List, size int) func() {
	var p ListClearStartInfo
	p.Size = size
	res := t.onClear(p)

	return func() {
		var p ListClearDoneInfo
		res(p)
	}
}
