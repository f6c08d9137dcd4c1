package imagery

// dishKeywords maps dish names to image search terms. A partial match takes
// the first entry in table order.
var dishKeywords = []struct {
	dish    string
	keyword string
}{
	{"火锅", "hotpot"},
	{"毛肚", "hotpot"},
	{"虾滑", "hotpot"},
	{"牛肉片", "hotpot"},
	{"海底捞", "hotpot"},
	{"小龙坎", "hotpot"},
	{"大龙燚", "hotpot"},
	{"呷哺呷哺", "hotpot"},
	{"小肥羊", "hotpot"},
	{"麻辣牛肉", "hotpot"},
	{"鸭肠", "hotpot"},
	{"脑花", "hotpot"},
	{"黄喉", "hotpot"},
	{"肥牛", "hotpot"},
	{"蔬菜拼盘", "hotpot"},
	{"羊肉片", "hotpot"},
	{"羊蝎子", "hotpot"},
	{"手切羊肉", "hotpot"},

	{"烧烤", "barbecue"},
	{"烤肉", "barbecue"},
	{"烤串", "barbecue"},
	{"韩式烤肉", "korean-barbecue"},
	{"羊肉串", "barbecue"},
	{"烤", "barbecue"},
	{"石锅拌饭", "korean-food"},
	{"泡菜汤", "korean-food"},

	{"烤鸭", "peking-duck"},
	{"北京烤鸭", "peking-duck"},
	{"焖炉烤鸭", "peking-duck"},
	{"鸭架汤", "peking-duck"},
	{"京酱肉丝", "chinese-food"},

	{"麻婆豆腐", "mapo-tofu"},
	{"水煮鱼", "sichuan-fish"},
	{"宫保鸡丁", "kung-pao-chicken"},
	{"麻辣香锅", "spicy-hot-pot"},
	{"麻辣烫", "spicy-soup"},
	{"干锅牛蛙", "spicy-food"},

	{"拉面", "ramen"},
	{"牛肉拉面", "beef-noodles"},
	{"羊肉拉面", "lamb-noodles"},
	{"重庆小面", "chongqing-noodles"},
	{"豌杂面", "noodles"},
	{"红油抄手", "wonton"},
	{"米线", "rice-noodles"},
	{"过桥米线", "rice-noodles"},
	{"酸辣米线", "spicy-noodles"},
	{"凉拌牛肉", "beef"},

	{"饺子", "dumplings"},
	{"包子", "steamed-buns"},
	{"小笼包", "xiaolongbao"},
	{"生煎包", "pan-fried-buns"},
	{"扁肉", "wonton"},
	{"拌面", "noodles"},
	{"蒸饺", "dumplings"},

	{"披萨", "pizza"},
	{"牛排", "steak"},
	{"意面", "pasta"},
	{"意大利面", "pasta"},
	{"提拉米苏", "tiramisu"},
	{"玛格丽特披萨", "pizza"},
	{"意式肉酱面", "pasta"},
	{"意式香肠披萨", "pizza"},

	{"日式", "japanese-food"},
	{"寿司", "sushi"},
	{"乌冬面", "udon"},
	{"豚骨拉面", "ramen"},
	{"味增拉面", "ramen"},
	{"日式炸鸡", "japanese-fried-chicken"},
	{"天妇罗", "tempura"},
	{"牛肉饭", "beef-rice"},
	{"照烧鸡排饭", "teriyaki-chicken"},
	{"牛丼饭", "gyudon"},
	{"咖喱饭", "curry-rice"},
	{"日式套餐", "japanese-bento"},
	{"味增汤", "miso-soup"},

	{"虾饺", "shrimp-dumplings"},
	{"烧卖", "shumai"},
	{"叉烧包", "char-siu-bao"},
	{"茶点", "dim-sum"},

	{"黄焖鸡", "braised-chicken"},
	{"黄焖排骨", "braised-pork"},
	{"大盘鸡", "xinjiang-chicken"},
	{"手抓饭", "pilaf"},
	{"剁椒鱼头", "fish-head"},
	{"口味虾", "spicy-shrimp"},
	{"小炒肉", "stir-fried-pork"},
	{"锅包肉", "sweet-sour-pork"},
	{"地三鲜", "three-delicacies"},
	{"西湖醋鱼", "west-lake-fish"},
	{"东坡肉", "dongpo-pork"},
	{"龙井虾仁", "shrimp"},
	{"糖醋里脊", "sweet-sour-pork"},
	{"白切鸡", "white-cut-chicken"},
	{"鸭血粉丝汤", "duck-blood-soup"},
	{"盐水鸭", "salted-duck"},
	{"豆汁", "beijing-food"},
	{"焦圈", "beijing-food"},
	{"驴打滚", "beijing-snack"},
	{"卤肉饭", "braised-pork-rice"},
	{"豆浆", "soy-milk"},
	{"油条", "youtiao"},
	{"莜面", "noodles"},
	{"凉皮", "liangpi"},
	{"鸡汤", "chicken-soup"},
	{"蒸蛋", "steamed-egg"},
	{"小菜", "side-dish"},
	{"蒸排骨", "steamed-ribs"},
	{"蒸鸡", "steamed-chicken"},
}
