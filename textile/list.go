package textile

import "strconv"

// itemLine is a line that starts a list item, split into its parts.
type itemLine struct {
	marker byte // '#' or '*'
	level  int
	start  string
	attrs  string
	text   string
}

func parseItemLine(line string) (itemLine, bool) {
	if loc := reOrderedItem.FindStringSubmatchIndex(line); loc != nil {
		item := itemLine{marker: '#', text: line[loc[1]:]}
		run, _ := submatch(reOrderedItem, line, loc, "level")
		item.level = len(run) - 1
		item.start, _ = submatch(reOrderedItem, line, loc, "start")
		item.attrs, _ = submatch(reOrderedItem, line, loc, "attributes")
		return item, true
	}
	if loc := reUnorderedItem.FindStringSubmatchIndex(line); loc != nil {
		item := itemLine{marker: '*', text: line[loc[1]:]}
		run, _ := submatch(reUnorderedItem, line, loc, "level")
		item.level = len(run) - 1
		item.attrs, _ = submatch(reUnorderedItem, line, loc, "attributes")
		return item, true
	}
	return itemLine{}, false
}

// parseList builds a list from the lines up to the first blank one.
// The blank line that ends the list is consumed with it.
func (p *Parser) parseList(lines []string, depth int) (Block, int) {
	n := 0
	for n < len(lines) && !isBlank(lines[n]) {
		n++
	}

	list, consumed := p.parseMultilevelList(lines[:n], 0, depth)
	if list == nil {
		return nil, 0
	}
	if consumed == n && n < len(lines) {
		consumed++
	}
	return list, consumed
}

// parseMultilevelList builds the list at the given level, ordered or unordered
// depending on the marker of the first line.
func (p *Parser) parseMultilevelList(lines []string, level int, depth int) (Block, int) {
	if list, n := p.parseListOf('#', lines, level, depth); list != nil {
		return list, n
	}
	return p.parseListOf('*', lines, level, depth)
}

// parseListOf collects the items of one kind at one level. A deeper item starts a nested list,
// added as a sibling of the items. A shallower item, or one of the other kind, ends the list.
func (p *Parser) parseListOf(marker byte, lines []string, level int, depth int) (Block, int) {
	if len(lines) == 0 {
		return nil, 0
	}
	if first, ok := parseItemLine(lines[0]); !ok || first.marker != marker {
		return nil, 0
	}

	var elements []ListElement
	start := 0
	seenItem := false

	i := 0
	for i < len(lines) {
		item, ok := parseItemLine(lines[i])
		if !ok {
			break
		}

		deeper := item.level > level
		if deeper && depth < p.maxNesting() {
			sub, n := p.parseMultilevelList(lines[i:], item.level, depth+1)
			if sub == nil || n == 0 {
				break
			}
			elements = append(elements, &SubList{List: sub})
			i += n
			continue
		}
		if !deeper && (item.level < level || item.marker != marker) {
			break
		}

		if !seenItem {
			seenItem = true
			if marker == '#' && len(item.start) > 0 {
				start, _ = strconv.Atoi(item.start)
			}
		}

		// The item continues in the following lines until the next item
		body := []string{item.text}
		for i++; i < len(lines); i++ {
			if _, next := parseItemLine(lines[i]); next {
				break
			}
			body = append(body, lines[i])
		}

		elements = append(elements, &ListItem{
			Attrs:    clusterAttributes(item.attrs),
			Elements: p.parseInlineElements(body, depth+1),
		})
	}

	if len(elements) == 0 {
		return nil, 0
	}

	if marker == '#' {
		return &OrderedList{Level: level, Start: start, Elements: elements}, i
	}
	return &UnorderedList{Level: level, Elements: elements}, i
}
