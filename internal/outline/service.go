package outline

import (
	"fmt"

	"contentforge/internal/core"
)

// ServicePage builds the outline for a service page from a fixed
// template. Service pages follow a known-good structure, so the outline
// is assembled locally instead of asking the model. The company
// overview appears only when a business name was collected, and the
// location block (local expertise, benefits, FAQ, service areas) only
// when location usage is enabled.
func ServicePage(topic, title string, meta *core.ServicePageMeta) []core.OutlineNode {
	business := ""
	audience := ""
	usesLocation := false
	if meta != nil {
		business = meta.BusinessName
		audience = meta.TargetAudience
		usesLocation = meta.UsesLocation && !meta.Location.IsZero()
	}

	heading := title
	if heading == "" {
		heading = topic
	}
	if usesLocation {
		heading = fmt.Sprintf("%s in %s", heading, meta.Location)
	}

	nodes := []core.OutlineNode{
		NewNode(core.NodeH1, heading),
		NewNode(core.NodeH2, "Professional "+topic+" Services"),
	}

	intro := NewNode(core.NodeList, "")
	intro.Items = []string{
		"What the service includes",
		"Who it is for",
		"Key outcomes customers can expect",
	}
	nodes = append(nodes, intro)

	if business != "" {
		nodes = append(nodes, NewNode(core.NodeH1, fmt.Sprintf("Why Choose %s", business)))
		reasons := NewNode(core.NodeList, "")
		reasons.Items = []string{
			"Experience and credentials",
			"Customer results and reviews",
			"Transparent pricing",
		}
		nodes = append(nodes, reasons)
	}

	if usesLocation {
		nodes = append(nodes,
			NewNode(core.NodeH1, fmt.Sprintf("Serving %s", meta.Location)),
			NewNode(core.NodeH2, "Local Expertise"),
		)
		local := NewNode(core.NodeList, "")
		local.Items = []string{
			fmt.Sprintf("Deep knowledge of the %s market", meta.Location),
			"Fast local response times",
			"Community involvement",
		}
		nodes = append(nodes, local)

		nodes = append(nodes, NewNode(core.NodeH2, "Benefits of a Local Provider"))
		benefits := NewNode(core.NodeList, "")
		benefits.Items = []string{
			"Same-day availability",
			"Familiarity with local regulations",
			"Accountability to your neighbors",
		}
		nodes = append(nodes, benefits)

		if len(meta.ServiceAreas) > 0 {
			areas := NewNode(core.NodeList, "")
			areas.Items = append(areas.Items, meta.ServiceAreas...)
			nodes = append(nodes,
				NewNode(core.NodeH2, "Additional Service Areas"),
				areas,
			)
		}

		nodes = append(nodes, NewNode(core.NodeH2, "Frequently Asked Questions"))
	}

	nodes = append(nodes, NewNode(core.NodeH1, "Our Services"))
	services := NewNode(core.NodeList, "")
	services.Items = []string{
		fmt.Sprintf("Core %s offerings", topic),
		"Specialized add-on services",
		"Maintenance and ongoing support",
	}
	nodes = append(nodes, services)

	who := "Who We Serve"
	if audience != "" {
		who = fmt.Sprintf("Who We Serve: %s", audience)
	}
	nodes = append(nodes, NewNode(core.NodeH1, who))

	nodes = append(nodes, NewNode(core.NodeH1, "What Our Customers Say"))

	nodes = append(nodes, NewNode(core.NodeH1, "Our Process"))
	process := NewNode(core.NodeList, "")
	process.Items = []string{
		"Initial consultation",
		"Customized plan",
		"Delivery and follow-up",
	}
	nodes = append(nodes, process)

	nodes = append(nodes, NewNode(core.NodeCTA, "Contact us today for a free quote"))

	return nodes
}
