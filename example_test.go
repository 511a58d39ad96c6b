package refdict_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/refdict"
	"github.com/hupe1980/refdict/record"
)

// Example demonstrates building a dictionary and looking up sequences by
// name, alias and index.
func Example() {
	dict := refdict.New()
	if err := dict.Add(record.New("chr1", 248956422)); err != nil {
		log.Fatal(err)
	}
	if err := dict.Add(record.New("chrM", 16569)); err != nil {
		log.Fatal(err)
	}
	if _, err := dict.AddAlias("chrM", "MT"); err != nil {
		log.Fatal(err)
	}

	fmt.Println(dict.Sequence("MT").Name())
	fmt.Println(dict.Index("chr1"))
	fmt.Println(dict.Len())
	// Output:
	// chrM
	// 0
	// 2
}

// ExampleMerge demonstrates reconciling the metadata of two compatible
// dictionaries.
func ExampleMerge() {
	a, _ := refdict.NewFromRecords([]*record.Record{
		record.New("chr1", 100).WithTag(record.TagMD5, "abc"),
	})
	b, _ := refdict.NewFromRecords([]*record.Record{
		record.New("chr1", 100).WithTag(record.TagURI, "file:///ref.fa"),
	})

	merged, err := refdict.Merge(a, b,
		refdict.WithStrictTags(refdict.DefaultStrictTags...),
	)
	if err != nil {
		log.Fatal(err)
	}

	md5, _ := merged.Sequence("chr1").Tag(record.TagMD5)
	uri, _ := merged.Sequence("chr1").Tag(record.TagURI)
	fmt.Println(md5)
	fmt.Println(uri)
	// Output:
	// abc
	// file:///ref.fa
}

// ExampleDictionary_Checksum demonstrates the content fingerprint.
func ExampleDictionary_Checksum() {
	dict, _ := refdict.NewFromRecords([]*record.Record{
		record.New("chr1", 100),
	})

	fmt.Println(dict.Checksum())
	// Output: 285e9892d8f7dcea98d78ab3a1eeaf1d
}
