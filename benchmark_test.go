package evicache

import (
	"fmt"
	"testing"
)

func BenchmarkCache_Put(b *testing.B) {
	for _, policy := range allPolicies {
		b.Run(string(policy), func(b *testing.B) {
			c, _ := New[string, string](policy, 10000)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Put(fmt.Sprintf("key-%d", i), "value")
			}
		})
	}
}

func BenchmarkCache_Get(b *testing.B) {
	for _, policy := range allPolicies {
		b.Run(string(policy), func(b *testing.B) {
			c, _ := New[string, string](policy, 10000)

			for i := 0; i < 10000; i++ {
				c.Put(fmt.Sprintf("key-%d", i), "value")
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Get(fmt.Sprintf("key-%d", i%10000))
			}
		})
	}
}

func BenchmarkCache_PutGetMixed(b *testing.B) {
	for _, policy := range allPolicies {
		b.Run(string(policy), func(b *testing.B) {
			c, _ := New[string, string](policy, 1000)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				key := fmt.Sprintf("key-%d", i%2000)
				if i%10 == 0 {
					c.Put(key, "value")
				} else {
					c.Get(key)
				}
			}
		})
	}
}

func BenchmarkCache_EvictionChurn(b *testing.B) {
	for _, policy := range allPolicies {
		b.Run(string(policy), func(b *testing.B) {
			// Capacity far below the key space keeps every insert evicting.
			c, _ := New[int, int](policy, 128)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Put(i, i)
			}
		})
	}
}
