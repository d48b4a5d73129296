// Package spots turns component descriptors into live, laid-out spots.
//
// A [Registry] maps a descriptor's kind to a [Constructor]. Resolving a
// descriptor builds a new [Spot]: a view plus a [layout.FlowLayout] sized by
// the variant's rules. The built-in variants are [Carousel], [List], [Grid],
// [Row], [ViewSpot] and the fallback [Generic].
//
// A [Controller] resolves a slice of descriptors and stacks the resulting
// views in a [scroll.ScrollView]:
//
//	ctrl := spots.NewController(nil, doc.Components)
//	ctrl.SetViewport(graphics.Size{Width: 375, Height: 667})
//	spot, _ := ctrl.SpotAt(0)
//	spot.Append(component.Item{Title: "New"})
//
// Every mutation relayouts the spot and publishes its content size on its
// view, which makes the scroll view restack its children.
package spots
