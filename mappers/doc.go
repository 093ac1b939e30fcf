// Package mappers provides composable value mappers used to describe which requests an
// expectation should match.
//
// A [Mapper] turns an input into an output, a [Matcher] is a Mapper that produces a bool.
// Mappers nest: transforms such as [Text], [Lowercase], [URLDecoded] or [Len] hold an inner
// mapper over the transformed value and return its output unchanged. Leaves such as [Eq],
// [Matches], [Glob] or [Substring] end the chain:
//
//	// form body that carries "name=alice"
//	mappers.Text(mappers.URLDecoded(mappers.Contains(mappers.KVEq("name", "alice"))))
//
//	// JSON body whose user is called alice
//	mappers.JSONField("user.name", mappers.Eq("alice"))
//
// Mappers must be deterministic: calling Map twice with the same input yields the same
// output. Every mapper renders its structure through String, which is what shows up in
// failure messages.
//
// Extractors that project an HTTP request onto one of its fields live in the
// [github.com/advdv/bmock/mappers/request] package.
package mappers
