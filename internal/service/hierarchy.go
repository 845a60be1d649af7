package service

import (
	"sort"

	"github.com/assetdesk/backend/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// BuildHierarchy 从扁平人员列表构建组织架构森林
//
// managerId可解析的人员挂到其上级之下；无上级或上级不存在（悬垂引用）
// 的人员成为第0层根节点。各层子节点按名称升序递归排序。
//
// managerId环会让无防护的递归永不终止，这里在挂接前沿上级链探测：
// 处于环中的人员被降级为根节点，其ID收集到第二个返回值中，
// 保证输出始终是有限森林
func BuildHierarchy(people []domain.Person) ([]*domain.PersonNode, []string) {
	nodes := make(map[string]*domain.PersonNode, len(people))
	managers := make(map[string]string, len(people))
	for i := range people {
		p := &people[i]
		nodes[p.ID] = &domain.PersonNode{
			ID:           p.ID,
			Name:         p.Name,
			Email:        p.Email,
			Position:     p.Position,
			Status:       p.Status,
			TeamID:       p.TeamID,
			TeamName:     p.TeamName,
			ManagerID:    p.ManagerID,
			Subordinates: []*domain.PersonNode{},
		}
		managers[p.ID] = p.ManagerID
	}

	// 环探测：沿上级链向上走，回到自己即处于环中
	inCycle := make(map[string]bool)
	for id := range nodes {
		seen := map[string]bool{id: true}
		current := managers[id]
		for current != "" {
			if current == id {
				inCycle[id] = true
				break
			}
			if seen[current] {
				// 链进入了一个不含自己的环，自己不在环中
				break
			}
			if _, ok := nodes[current]; !ok {
				break
			}
			seen[current] = true
			current = managers[current]
		}
	}

	var roots []*domain.PersonNode
	var cycles []string
	for i := range people {
		node := nodes[people[i].ID]
		manager, ok := nodes[people[i].ManagerID]
		if people[i].ManagerID == "" || !ok || inCycle[node.ID] {
			roots = append(roots, node)
			if inCycle[node.ID] {
				cycles = append(cycles, node.ID)
			}
			continue
		}
		manager.Subordinates = append(manager.Subordinates, node)
	}

	// 层级用显式栈自根向下赋值，不依赖输入顺序
	type frame struct {
		node  *domain.PersonNode
		level int
	}
	stack := make([]frame, 0, len(roots))
	for _, root := range roots {
		stack = append(stack, frame{root, 0})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f.node.Level = f.level
		for _, child := range f.node.Subordinates {
			stack = append(stack, frame{child, f.level + 1})
		}
	}

	sortNodes(roots)
	sort.Strings(cycles)
	return roots, cycles
}

// sortNodes 按名称升序递归排序
func sortNodes(nodes []*domain.PersonNode) {
	c := collate.New(language.Und)
	sort.SliceStable(nodes, func(i, j int) bool {
		return c.CompareString(nodes[i].Name, nodes[j].Name) < 0
	})
	for _, node := range nodes {
		if len(node.Subordinates) > 0 {
			sortNodes(node.Subordinates)
		}
	}
}
