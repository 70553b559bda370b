package drift

import "testing"

func TestBucketRowInsertAndDrop(t *testing.T) {
	row := newBucketRow(5)

	if row.size != 0 {
		t.Fatalf("new row size = %d, want 0", row.size)
	}
	if len(row.total) != 6 || len(row.variance) != 6 {
		t.Fatalf("row capacity = %d/%d, want 6", len(row.total), len(row.variance))
	}

	row.insert(1.0, 0.0)
	row.insert(2.0, 0.5)
	row.insert(3.0, 1.5)

	if row.size != 3 {
		t.Fatalf("size after 3 inserts = %d, want 3", row.size)
	}
	// oldest-first ordering
	if row.total[0] != 1.0 || row.total[1] != 2.0 || row.total[2] != 3.0 {
		t.Errorf("unexpected bucket order: %v", row.total[:3])
	}

	row.drop(2)

	if row.size != 1 {
		t.Fatalf("size after drop(2) = %d, want 1", row.size)
	}
	if row.total[0] != 3.0 || row.variance[0] != 1.5 {
		t.Errorf("surviving bucket = (%v, %v), want (3, 1.5)", row.total[0], row.variance[0])
	}
	// freed slots zeroed
	if row.total[1] != 0 || row.variance[1] != 0 {
		t.Errorf("freed slots not zeroed: %v %v", row.total[1], row.variance[1])
	}
}

func TestBucketRowChainTailGrowth(t *testing.T) {
	chain := newBucketRowChain(5)

	if chain.last() != 0 {
		t.Fatalf("new chain last = %d, want 0", chain.last())
	}
	if chain.head() != chain.tail() {
		t.Fatal("single-row chain: head and tail should coincide")
	}

	chain.addToTail()
	chain.addToTail()

	if chain.last() != 2 {
		t.Fatalf("last after two tail adds = %d, want 2", chain.last())
	}

	chain.row(2).insert(4.0, 0.0)
	if chain.tail().total[0] != 4.0 {
		t.Error("tail should address the highest row")
	}

	chain.row(2).drop(1)
	chain.removeFromTail()
	if chain.last() != 1 {
		t.Fatalf("last after removeFromTail = %d, want 1", chain.last())
	}
}
