// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package alg provides composable algebraic capability contracts and two
// canonical container types, [Option] and [Either], in Go.
//
// A capability contract is a named set of operations plus the laws those
// operations must satisfy. Contracts are plain struct dictionaries passed
// explicitly to generic algorithms — dispatch never inspects concrete
// types, so a derived operation written once against a dictionary runs
// unchanged against Option, Either, slices, or any future conforming
// container.
//
// # Design Philosophy
//
// alg provides:
//   - Minimal but complete contracts from Magma up to Monad
//   - Explicit dictionary passing instead of nominal subtyping
//   - Pure, immutable, synchronous values throughout — absence and
//     failure are values, never thrown signals
//
// Higher contracts are struct bundles of the lower contract plus the new
// operation ([Monoid] embeds [Semigroup]; [Monad] combines [Pointed] and
// [Chain]). Go has no kind polymorphism, so a contract over a container
// F is specialized at the type applications in play: type parameters FA,
// FB, FAB stand for F<A>, F<B>, F<func(A) B>.
//
// # Equality and Ordering
//
//   - [Eq]: total equality — reflexive, symmetric, transitive
//   - [Ord]: total order returning -1/0/1; every Ord is an Eq
//   - [Bounded]: Ord with Bottom and Top elements
//   - [EqStrict], [OrdPrimitive]: instances for comparable carriers
//   - [ContramapEq], [ContramapOrd], [ReverseOrd]: derived constructors
//   - [SliceOrd]: lexicographic order; a longer slice with an equal
//     shared prefix is greater
//   - [OptionOrd]: None sorts strictly below every Some
//   - [Min], [Max], [Clamp], [Between]: comparison helpers
//
// # Combination
//
//   - [Magma]: closed binary operation, no laws beyond closure
//   - [Semigroup]: associative Magma; [FoldSemigroup] reduces from a seed
//   - [Monoid]: Semigroup with identity; [ConcatAll] reduces from Empty
//   - [Group]: Monoid with inverse; [AdditiveGroup]
//   - Instances: [SumMonoid], [ProductMonoid], [StringMonoid],
//     [AllMonoid], [AnyMonoid], [SliceMonoid], [FirstMonoid],
//     [LastMonoid], [OptionMonoid], [MinSemigroup], [MaxSemigroup],
//     [BoundedMinMonoid], [BoundedMaxMonoid], [EndoMonoid]
//   - Combinators: [DualSemigroup], [DualMonoid], [FunctionMonoid],
//     [PairMonoid]
//
// # Mapping
//
// Minimal monad definition: Of and Bind are necessary and sufficient.
// Map and Ap are direct members kept to avoid intermediate closure
// allocations; the derivations must agree with them.
//
//   - [Functor]: Map — transform without inspecting the container
//   - [Apply]: Ap — combine two independent computations
//   - [Pointed]: Of — minimal-context constructor
//   - [Applicative]: Apply + Pointed
//   - [Chain]: Bind — the selector produces a container; Bind flattens
//   - [Monad]: Applicative + Chain, the terminal consumer capability
//   - [MapFromBind], [ApFromBind]: derivations from the minimal core
//   - Instances: [OptionMonad], [EitherMonad], [SliceMonad] and the
//     Functor/Applicative constructors alongside them
//
// # Choice and Narrowing
//
//   - [Alternative]: Alt ("first that succeeds"), Of, and Zero — the
//     identity for Alt and annihilator for Map/Ap
//   - [Compactable]: Compact drops absent entries, Separate splits a
//     container of Eithers into a [Separated]
//   - [Filterable]: Filter, FilterMap, Partition, PartitionMap
//   - Instances: [OptionAlternative], [SliceAlternative],
//     [OptionFilterable], [SliceFilterable], [OptionCompactable],
//     [SliceCompactable]
//
// # Reduction and Rebuilding
//
//   - [Foldable]: Reduce (left-to-right) and ReduceRight collapse a
//     container without reconstructing it
//   - [ReduceSlice], [ReduceRightSlice], [FoldMapSlice]: iterative slice
//     reductions — recursion depth never grows with input size
//   - [UnfoldSlice]: rebuild a slice from a seed until the step yields
//     None; [ReplicateSlice]
//
// # Traversal
//
// Traverse runs an effectful mapping over every element and reassembles
// the original shape inside the other container G; Sequence is traverse
// with the identity selector. The applicative for G is passed as
// explicit operation functions. Elements are visited in the container's
// natural order, and effects in G occur in that order.
//
//   - [TraverseOption], [SequenceOption]
//   - [TraverseEither], [SequenceEither]
//   - [TraverseSlice]: generic over any G
//   - Short-circuiting specializations: [TraverseSliceOption],
//     [SequenceSliceOption], [TraverseSliceEither], [SequenceSliceEither]
//   - Container flips: [SequenceOptionEither], [SequenceEitherOption]
//
// # Option
//
// [Option] holds zero or one value: None or Some.
//
//   - [Some], [None]: constructors
//   - [Option.IsSome], [Option.IsNone], [Option.Get]: accessors
//   - [MatchOption]: pattern matching
//   - [MapOption], [ApOption], [FlatMapOption]: functor chain; None
//     short-circuits
//   - [AltOption], [GetOrElse]: choice and fallback
//   - [FilterOption], [FilterMapOption], [PartitionOption],
//     [PartitionMapOption], [CompactOption], [SeparateOption]: narrowing
//   - [ReduceOption], [ReduceRightOption], [ExistsOption],
//     [ContainsOption]: reduction
//   - [DuplicateOption]: explicit nesting
//   - [FromNullable], [FromPredicate], [TryCatchOption]: adapters
//   - [OptionToEither], [EitherToOption]: conversions
//
// # Either
//
// [Either] holds exactly one of two values: Left (failure) or Right
// (success), right-biased.
//
//   - [Left], [Right]: constructors
//   - [Either.IsLeft], [Either.IsRight], [Either.GetLeft],
//     [Either.GetRight]: accessors
//   - [MatchEither]: pattern matching
//   - [MapEither], [ApEither], [FlatMapEither]: functor chain; Left
//     short-circuits, preserving its payload
//   - [MapLeftEither], [BimapEither], [SwapEither]: left-side mapping
//   - [AltEither]: first Right wins, else the last Left
//   - [ValidationAp], [ValidationAlt]: accumulating variants combining
//     Left payloads through a supplied [Semigroup]
//   - [GetOrElseEither], [OrElseEither]: fallback
//   - [ReduceEither], [ReduceRightEither], [ExistsEither]: reduction
//   - [FromPredicateEither], [FromNullableEither], [TryCatchEither]:
//     adapters
//
// # Generic Derived Operations
//
// Implemented once against the dictionaries, never against a concrete
// container:
//
//   - [Fold], [FoldMap]: monoidal reduction
//   - [FilterWith], [FilterMapWith], [PartitionWith],
//     [PartitionMapWith]: narrowing through a [Filterable]
//   - [CompactWith], [SeparateWith]: through a [Compactable]
//   - [AltWith]: first present candidate through an [Alternative]
//   - [LiftA2]: combine two independent computations
//
// # Interop Boundary
//
// No exceptions are used internally for control flow. A collaborator
// that may panic is crossed exactly once, at [TryCatchOption] or
// [TryCatchEither], which convert any thrown signal deterministically
// into None or Left via a total conversion function.
//
// # Show
//
// [Show] is the only externally observable serialization point,
// one-directional text rendering: [ShowInt], [ShowBool], [ShowString],
// [ShowOption], [ShowEither], [ShowSlice], [ShowPair].
//
// # Example
//
//	parse := alg.FromPredicate(func(n int) bool { return n >= 0 })
//	total := alg.MapOption(
//		alg.SequenceSliceOption([]alg.Option[int]{parse(1), parse(2)}),
//		func(ns []int) int { return alg.Fold(alg.SumMonoid[int](), ns) },
//	)
//	// total == Some(3)
package alg
