package lwwset_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/DobryySoul/lwwset"
)

func ExampleStore_Merge() {
	a := lwwset.NewStore[string, string]()
	b := lwwset.NewStore[string, string]()

	a.Set("k", lwwset.NewEntry("old", 100))
	b.Set("k", lwwset.NewEntry("new", 200))
	b.Set("only-b", lwwset.NewEntry("b", 1))

	merged := a.Merge(b)
	value, _ := merged.Get("k")
	fmt.Println(value, merged.Len(), merged == a)
	// Output: new 2 true
}

func ExampleMergeAll() {
	s1 := lwwset.NewStore[string, string]()
	s2 := lwwset.NewStore[string, string]()
	s3 := lwwset.NewStore[string, string]()
	s1.Set("x", lwwset.NewEntry("s1", 100))
	s2.Set("x", lwwset.NewEntry("s2", 300))
	s3.Set("x", lwwset.NewEntry("s3", 200))

	value, _ := lwwset.MergeAll(s1, s2, s3).Get("x")
	fmt.Println(value)
	// Output: s2
}

func ExampleStore_Remove() {
	s := lwwset.NewStore[string, string]()
	s.Remove("k")

	_, err := s.Get("k")
	fmt.Println(errors.Is(err, lwwset.ErrKeyNotFound))
	fmt.Println(err)
	// Output:
	// true
	// lwwset: key not found: "k"
}

func ExampleReplica_Merge() {
	ctx := context.Background()
	a, _ := lwwset.NewReplica[string, string](lwwset.WithReplicaID("a"))
	b, _ := lwwset.NewReplica[string, string](lwwset.WithReplicaID("b"))

	_, _ = a.Put(ctx, "greeting", "hello")
	_, _ = b.Put(ctx, "greeting", "hi")
	_, _ = b.Put(ctx, "greeting", "hey")

	_ = a.Merge(ctx, b)
	_ = b.Merge(ctx, a)

	va, _ := a.Get(ctx, "greeting")
	vb, _ := b.Get(ctx, "greeting")
	fmt.Println(va, vb)
	// Output: hey hey
}
