package trace

type (
	// List specified trace of forward list mutations which move whole chains.
	List struct {
		OnSort  func(ListSortStartInfo) func(ListSortDoneInfo)
		OnSplit func(ListSplitStartInfo) func(ListSplitDoneInfo)
		OnMerge func(ListMergeStartInfo) func(ListMergeDoneInfo)
		OnClear func(ListClearStartInfo) func(ListClearDoneInfo)
	}

	ListSortStartInfo struct {
		Size int
	}
	ListSortDoneInfo struct {
		Size int
	}
	ListSplitStartInfo struct {
		Size int
	}
	ListSplitDoneInfo struct {
		Size        int
		SiblingSize int
	}
	ListMergeStartInfo struct {
		Size      int
		OtherSize int
	}
	ListMergeDoneInfo struct {
		Size int
	}
	ListClearStartInfo struct {
		Size int
	}
	ListClearDoneInfo struct{}
)
