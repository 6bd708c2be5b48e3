package clientprint_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/kentcdodds/clientprint"
)

func ExampleNew() {
	resolver, err := clientprint.New()
	if err != nil {
		panic(err)
	}

	req := &http.Request{Header: make(http.Header)}
	req.Header.Set("X-Forwarded-For", "unknown, 203.0.113.121")

	res := resolver.ResolveRequest(req)
	if res.Found() {
		fmt.Println(res.IP, res.Source)
	}
	// Output: 203.0.113.121 x_forwarded_for
}

func ExampleResolver_Resolve() {
	resolver, _ := clientprint.New()

	// A damaged Forwarded header: quoted chain, nested for= injection, a
	// parameter folded into the quoted value. The real address survives.
	res := resolver.Resolve(context.Background(), clientprint.RawHeaders{
		Forwarded: `for="unknown, FOR = for = 198.51.100.245;proto=https";proto=https`,
	})

	fmt.Println(res.String(), res.Source)
	// Output: 198.51.100.245 forwarded
}

func ExampleResolver_Visit() {
	resolver, _ := clientprint.New()

	req := &http.Request{Header: make(http.Header)}
	req.Header.Set("Forwarded", `for="[2001:db8::17]:4711";proto=https`)
	req.Header.Set("User-Agent", "Pocket Casts/7.0")

	visit := resolver.Visit(req)
	fmt.Println(visit.ClientIP, visit.Source, strings.HasPrefix(visit.Fingerprint, "fp_"))
	// Output: 2001:db8::17 forwarded true
}

func ExampleFingerprint() {
	a := clientprint.Fingerprint("203.0.113.10", "Pocket Casts/7.0")
	b := clientprint.Fingerprint("203.0.113.10", "Pocket Casts/7.0")
	none := clientprint.Fingerprint("", "")

	fmt.Println(a == b, len(a), none == "")
	// Output: true 11 true
}
