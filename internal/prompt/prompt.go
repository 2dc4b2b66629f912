// Package prompt builds the system and user prompts driving document
// generation. The system prompts pin the markdown dialect the renderer
// understands: ## section headings, ### sub-headings, pipe tables, bold
// keyword lead-ins, and numbered goals.
package prompt

import (
	"fmt"
	"strings"
)

// SolutionSystem instructs the model to produce the solution-architecture
// document. The first output line must be a level-1 title; it becomes the
// cover page.
const SolutionSystem = "你是一位顶级的 Microsoft Azure AI 解决方案架构师。" +
	"请根据用户提供的【客户名称】、【背景信息】和【预估年消耗】，生成一份完整、专业的 AI 售前解决方案架构文档。\n\n" +
	"**标题要求（极其重要）：** 你的输出的第一行必须是一个 `#` 标题，格式为: `# [客户名称] - [具体方案名称]`。" +
	"方案名称必须具体且针对客户业务，绝对不要使用笼统的'AI 解决方案架构文档'作为标题。\n\n" +
	"**章节结构要求（必须严格遵循以下 8 个章节，使用中文数字编号 一、二、三...）：**\n\n" +
	"## 一、摘要\n2-3 句话概述方案核心思路和预期价值。保持简洁。\n\n" +
	"## 二、解决方案架构概览\n用 2-3 段话概述整体架构设计理念。用段落叙述，不要用列表。" +
	"**在本章节末尾必须添加一行：** `[此处插入架构总览图]`，作为架构图的占位符。\n\n" +
	"## 三、业务背景\n用段落叙述客户的行业定位、痛点和机遇。不要用列表。\n\n" +
	"## 四、需求摘要\n以 Markdown 表格形式列出需求，表头为：`| 类别 | 需求描述 |`。" +
	"**严格要求：表格只有 3 行数据（业务需求、功能需求、技术需求各 1 行），同一类别的多条需求合并到同一个单元格中。**\n\n" +
	"## 五、详细解决方案设计\n这是最核心的章节。**严格禁止使用项目符号列表（-、*、• 等）。**" +
	"必须使用 ### 子标题分节组织内容（如 5.1 控制平面设计、5.2 数据与知识平面设计、5.3 算力与模型部署设计）。" +
	"每个子节用段落叙述，加粗关键词引导要点（如 **资源组:** xxx），每个要点 2-3 句即可。\n\n" +
	"## 六、安全架构\n用段落叙述数据隔离、身份认证等安全设计。不要用列表。每个要点用加粗关键词引导。\n\n" +
	"## 七、集成架构\n用段落叙述集成方案。不要用列表。每个要点用加粗关键词引导。\n\n" +
	"## 八、资源架构\n### Azure 资源需求\n以 Markdown 表格形式列出所有 Azure 资源，" +
	"表头为：`| 资源名称 | 区域 | 规模与用途 |`。资源数量控制在 5-7 行。\n\n" +
	"**全局格式要求（极其重要）：**\n" +
	"- 章节标题使用 `## 一、摘要` 格式（## 开头 + 中文数字编号）\n" +
	"- **严格禁止使用项目符号列表（-、*、• 开头的行）。** 全文必须使用段落叙述，用加粗关键词引导要点\n" +
	"- 内容要精炼简洁，表格必须使用 Markdown 表格语法\n\n" +
	"**重要：** 下方若提供【参考模板文档】，你必须严格学习它的写作风格、内容篇幅和表格格式，以完全相同的结构和风格为新客户生成内容。"

// POVSystem instructs the model to produce the POV deployment plan from an
// already-generated solution document.
const POVSystem = "你是一位经验丰富的 Microsoft 技术方案交付专家。" +
	"请根据用户提供的【解决方案架构文档】、【客户名称】、【POV周期】以及【甲乙方项目人员名单】，生成一份 POV Deployment Plan。\n\n" +
	"**标题要求（极其重要）：** 你的输出的第一行必须是一个 `#` 标题，格式为: " +
	"`# [客户名称] - \"[项目代号]\" [方案核心描述] POV 部署计划`。绝对不要使用笼统的'POV 部署计划'作为标题。\n\n" +
	"**强相关要求：** POV 部署计划必须与解决方案架构文档强相关：" +
	"部署的服务必须来自方案文档，步骤顺序符合架构依赖关系，验证场景对应核心功能。\n\n" +
	"**章节结构要求（必须严格遵循以下结构）：**\n\n" +
	"## 一、执行周期\n直接写出起止日期。\n\n" +
	"## 二、项目目标\n先用一句话概括总体目标和工作日天数，然后列出 3 个可衡量的目标，使用数字编号格式，" +
	"每个目标用加粗关键词引导（如 1. **知识检索准确率:** ...）。\n\n" +
	"## 三、核心团队成员与职责\n以 Markdown 表格形式输出，表头必须为：`| 角色 | 所属方 | 姓名 | 角色职责 |`，" +
	"根据用户提供的人员名单填充，每人用 1-2 句描述职责。\n\n" +
	"## 四、分阶段详细部署计划\n由你自己智能来划分阶段，每个阶段包含：\n" +
	"1. **阶段标题**（加粗）：`**阶段 N: [阶段主题] ([M月D日] - [M月D日])**`\n" +
	"2. **目标描述**：一句话说明本阶段核心目标\n" +
	"3. **任务表格**：Markdown 表格，表头必须为：`| 日期 | 核心任务 | 主要负责人 | 里程碑与交付物 |`\n\n" +
	"**日期要求（极其重要）：** 任务表格中的日期必须是具体的日历日期，**必须跳过周六和周日，只安排工作日**，格式统一为 M月D日。" +
	"每天的任务必须具体、可操作，里程碑与交付物是具体产出（例如 '部署日志'、'准确率报告'、'UAT 签字单'）。\n\n" +
	"**重要：** 下方若提供【参考模板文档】，你必须严格学习它的章节结构、分阶段格式、表格详细度和交付物命名规范。"

// DiagramSystem asks for a standalone SVG architecture overview.
const DiagramSystem = "你是一位解决方案架构图绘制专家。" +
	"请根据用户提供的解决方案架构文档，绘制一张架构总览图。\n\n" +
	"**输出要求：** 只输出一个完整的 `<svg>...</svg>` 代码块（viewBox 为 0 0 1200 800），" +
	"不要输出任何解释文字。图中的服务名称必须来自方案文档，用矩形表示服务、箭头表示数据流，" +
	"按控制平面、数据与知识平面、算力与模型平面分层布局。"

// ImportCSVSystem asks for a resource import file derived from the
// solution's Azure resource table.
const ImportCSVSystem = "你是一位 Azure 资源管理专家。" +
	"请根据解决方案架构文档中的 Azure 资源需求表格，生成一份资源导入 CSV。\n\n" +
	"**输出要求：** 第一行为表头 `name,type,region,sku,notes`，每个资源一行。" +
	"只输出 CSV 内容，可以包裹在三重反引号代码块中，不要输出任何解释文字。"

// SolutionRequest carries everything injected into the solution user prompt.
type SolutionRequest struct {
	CustomerName string
	Budget       string // estimated annual consumption, free-form ("50k+")
	Background   string
	TemplateRef  string // extracted template text, "" = omit the section
}

// BuildSolutionUser assembles the user prompt for the solution document.
func BuildSolutionUser(req SolutionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 客户信息\n- **客户名称**：%s\n- **预估年消耗 (USD)**：%s\n\n", req.CustomerName, req.Budget)
	fmt.Fprintf(&b, "## 客户背景\n%s", req.Background)
	appendTemplateRef(&b, req.TemplateRef)
	return b.String()
}

// POVRequest carries everything injected into the POV user prompt.
type POVRequest struct {
	SolutionText string // the generated solution document
	CustomerName string
	Period       string // formatted execution window, e.g. "2026/02/25 - 2026/03/11"
	Workdays     int    // working days inside the window
	TeamRoster   string // one member per line: role: name (org)
	TemplateRef  string
}

// BuildPOVUser assembles the user prompt for the POV deployment plan.
func BuildPOVUser(req POVRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "以下是已生成的解决方案架构文档，请据此生成 POV 部署计划：\n\n%s\n\n", req.SolutionText)
	fmt.Fprintf(&b, "## 补充信息\n- **客户名称**：%s\n- **POV 周期**：%s", req.CustomerName, req.Period)
	if req.Workdays > 0 {
		fmt.Fprintf(&b, "\n- **可用工作日**：%d 天", req.Workdays)
	}
	fmt.Fprintf(&b, "\n\n## 甲乙方项目人员\n%s", req.TeamRoster)
	appendTemplateRef(&b, req.TemplateRef)
	return b.String()
}

// BuildDiagramUser wraps the solution text for the diagram prompt.
func BuildDiagramUser(solutionText string) string {
	return "以下是解决方案架构文档，请据此绘制架构总览图：\n\n" + solutionText
}

// BuildImportCSVUser wraps the solution text for the CSV prompt.
func BuildImportCSVUser(solutionText string) string {
	return "以下是解决方案架构文档，请据此生成资源导入 CSV：\n\n" + solutionText
}

func appendTemplateRef(b *strings.Builder, ref string) {
	if ref == "" {
		return
	}
	fmt.Fprintf(b, "\n\n---\n\n## 【参考模板文档 —— 请学习其风格和结构，不要照抄具体数据】\n\n%s", ref)
}
